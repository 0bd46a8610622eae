package attach_form_data

import (
	"context"

	"github.com/velmark/NST-BookingService/internal/domain"
	"github.com/velmark/NST-BookingService/internal/integrations/customerservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	AttachFormData(ctx context.Context, id int64, customerID *int64, customerName, customerPhone *string, externalResponseID string) error
}

// CustomerServiceClient интерфейс клиента для CustomerService
type CustomerServiceClient interface {
	ResolveWithGracefulDegradation(ctx context.Context, name, phone string) (*customerservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
