package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartSlotID <= 0 {
		return fmt.Errorf("%w: startSlotId must be positive", ErrInvalidInput)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidServiceType, req.ServiceType)
	}

	// Дубликаты в цепочке отлавливаем до обращения к БД
	seen := map[int64]struct{}{req.StartSlotID: {}}
	for _, id := range req.LinkedSlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: linked slot id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot id %d in chain", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
