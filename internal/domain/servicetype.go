package domain

// ServiceType determines the shape of a booking: how many consecutive
// slots the service occupies. Количество слотов привязано к типу услуги,
// а не выводится из опциональных полей в местах вызова
type ServiceType string

const (
	ServiceManicure ServiceType = "manicure"
	ServicePedicure ServiceType = "pedicure"
	ServiceManiPedi ServiceType = "mani_pedi"
	ServiceFullSet  ServiceType = "full_set"
)

// requiredSlots количество последовательных слотов на тип услуги
var requiredSlots = map[ServiceType]int{
	ServiceManicure: 1,
	ServicePedicure: 1,
	ServiceManiPedi: 2,
	ServiceFullSet:  3,
}

// IsValid returns true if the service type is known
func (s ServiceType) IsValid() bool {
	_, ok := requiredSlots[s]
	return ok
}

// RequiredSlots returns the number of consecutive slots the service needs.
// Для неизвестного типа возвращает 0
func (s ServiceType) RequiredSlots() int {
	return requiredSlots[s]
}

// RequiredLinkedSlots returns the number of linked slots beyond the primary one
func (s ServiceType) RequiredLinkedSlots() int {
	n := s.RequiredSlots()
	if n <= 1 {
		return 0
	}
	return n - 1
}
