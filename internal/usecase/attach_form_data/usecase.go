package attach_form_data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/velmark/NST-BookingService/internal/domain"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
	customerClient "github.com/velmark/NST-BookingService/internal/integrations/customerservice"
)

// UseCase use case для прикрепления данных внешней формы к бронированию
type UseCase struct {
	bookingRepo    BookingRepository
	customerClient CustomerServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		customerClient: customerClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case прикрепления данных формы.
// Вебхук формы может доставляться повторно, поэтому операция идемпотентна
// по external_response_id: повторная доставка того же ответа возвращает
// текущее состояние без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AttachFormData: booking=%d, response=%s", req.BookingID, req.ExternalResponseID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AttachFormData: validation failed: %v", err)
		return nil, err
	}

	// Сопоставление клиента делаем до транзакции: внешний HTTP-вызов
	// не должен удерживать сериализуемую транзакцию
	var customerID *int64
	customer, err := uc.customerClient.ResolveWithGracefulDegradation(ctx, req.CustomerName, req.CustomerPhone)
	switch {
	case err == nil:
		customerID = &customer.ID
	case errors.Is(err, customerClient.ErrCustomerNotFound):
		uc.logger.Info("AttachFormData: no customer matched for booking id=%d", req.BookingID)
	case errors.Is(err, customerClient.ErrServiceDegraded):
		uc.logger.Warn("AttachFormData: customer resolution degraded for booking id=%d, proceeding without customer", req.BookingID)
	default:
		uc.logger.Error("AttachFormData: customer resolution failed: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
	}

	var result *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("AttachFormData: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Повторная доставка того же ответа формы
		if booking.ExternalResponseID != nil && *booking.ExternalResponseID == req.ExternalResponseID {
			uc.logger.Info("AttachFormData: response %s already attached to booking id=%d, no-op",
				req.ExternalResponseID, req.BookingID)
			result = &Response{
				ID:            booking.ID,
				BookingNumber: booking.BookingNumber,
				Status:        string(booking.Status),
				CustomerID:    booking.CustomerID,
				AlreadyBound:  true,
			}
			return nil
		}

		if booking.Status != domain.StatusPendingForm {
			uc.logger.Warn("AttachFormData: booking id=%d has status %q", req.BookingID, booking.Status)
			return fmt.Errorf("%w: status is %q", ErrInvalidState, booking.Status)
		}

		err = uc.bookingRepo.AttachFormData(
			txCtx,
			req.BookingID,
			customerID,
			&req.CustomerName,
			&req.CustomerPhone,
			req.ExternalResponseID,
		)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateExternalResponse) {
				uc.logger.Warn("AttachFormData: response %s already attached elsewhere", req.ExternalResponseID)
				return ErrDuplicateResponse
			}
			uc.logger.Error("AttachFormData: failed to attach form data to booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to attach form data: %v", ErrInternal, err)
		}

		result = &Response{
			ID:            booking.ID,
			BookingNumber: booking.BookingNumber,
			Status:        string(domain.StatusPendingPayment),
			CustomerID:    customerID,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AttachFormData: booking id=%d now %s", result.ID, result.Status)
	return result, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone exceeds %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	if strings.TrimSpace(req.ExternalResponseID) == "" {
		return fmt.Errorf("%w: externalResponseId is required", ErrInvalidInput)
	}

	return nil
}
