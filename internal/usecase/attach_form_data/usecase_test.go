package attach_form_data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/NST-BookingService/internal/domain"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
	"github.com/velmark/NST-BookingService/internal/integrations/customerservice"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
	"github.com/velmark/NST-BookingService/pkg/ptr"
)

type stubTx struct{}

func (stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (stubTx) Commit() error                                                   { return nil }
func (stubTx) Rollback() error                                                 { return nil }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(dbmetrics.WithTx(ctx, stubTx{}))
}

type fakeBookingRepo struct {
	booking     *domain.Booking
	attachErr   error
	attachCalls int
	lastCustID  *int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) AttachFormData(
	_ context.Context,
	_ int64,
	customerID *int64,
	customerName, customerPhone *string,
	externalResponseID string,
) error {
	f.attachCalls++
	f.lastCustID = customerID
	if f.attachErr != nil {
		return f.attachErr
	}
	f.booking.Status = domain.StatusPendingPayment
	f.booking.CustomerID = customerID
	f.booking.CustomerName = customerName
	f.booking.CustomerPhone = customerPhone
	f.booking.ExternalResponseID = &externalResponseID
	return nil
}

type fakeCustomerClient struct {
	customer *customerservice.Customer
	err      error
}

func (f *fakeCustomerClient) ResolveWithGracefulDegradation(context.Context, string, string) (*customerservice.Customer, error) {
	return f.customer, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingFormBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		BookingNumber: "NB00001",
		SlotID:        10,
		Status:        domain.StatusPendingForm,
	}
}

func validRequest() *Request {
	return &Request{
		BookingID:          1,
		CustomerName:       "Anna",
		CustomerPhone:      "+79990001122",
		ExternalResponseID: "resp-001",
	}
}

func TestExecute_AttachesFormData(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingFormBooking()}
	client := &fakeCustomerClient{customer: &customerservice.Customer{ID: 42, Name: "Anna"}}
	uc := NewUseCase(repo, client, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingPayment), resp.Status)
	assert.Equal(t, int64(42), *resp.CustomerID)
	assert.False(t, resp.AlreadyBound)
	assert.Equal(t, 1, repo.attachCalls)
}

func TestExecute_IdempotentRedelivery(t *testing.T) {
	booking := pendingFormBooking()
	booking.Status = domain.StatusPendingPayment
	booking.ExternalResponseID = ptr.Ptr("resp-001")
	booking.CustomerID = ptr.Ptr(int64(42))
	repo := &fakeBookingRepo{booking: booking}
	uc := NewUseCase(repo, &fakeCustomerClient{customer: &customerservice.Customer{ID: 42}}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.AlreadyBound)
	assert.Equal(t, string(domain.StatusPendingPayment), resp.Status)
	assert.Zero(t, repo.attachCalls, "redelivery must not touch the booking")
}

func TestExecute_WrongState(t *testing.T) {
	booking := pendingFormBooking()
	booking.Status = domain.StatusConfirmed
	booking.ExternalResponseID = ptr.Ptr("resp-000")
	repo := &fakeBookingRepo{booking: booking}
	uc := NewUseCase(repo, &fakeCustomerClient{err: customerservice.ErrCustomerNotFound}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeCustomerClient{err: customerservice.ErrCustomerNotFound}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_DuplicateResponseAcrossBookings(t *testing.T) {
	repo := &fakeBookingRepo{
		booking:   pendingFormBooking(),
		attachErr: bookingRepo.ErrDuplicateExternalResponse,
	}
	uc := NewUseCase(repo, &fakeCustomerClient{err: customerservice.ErrCustomerNotFound}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateResponse)
}

func TestExecute_GracefulDegradation(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingFormBooking()}
	client := &fakeCustomerClient{err: customerservice.ErrServiceDegraded}
	uc := NewUseCase(repo, client, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.CustomerID, "booking proceeds without a customer")
	assert.Equal(t, 1, repo.attachCalls)
	assert.Nil(t, repo.lastCustID)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingFormBooking()}
	uc := NewUseCase(repo, &fakeCustomerClient{err: customerservice.ErrCustomerNotFound}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.CustomerID)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeCustomerClient{}, fakeTxManager{}, nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero booking id", &Request{CustomerName: "A", CustomerPhone: "1", ExternalResponseID: "r"}},
		{"empty name", &Request{BookingID: 1, CustomerPhone: "1", ExternalResponseID: "r"}},
		{"blank name", &Request{BookingID: 1, CustomerName: "   ", CustomerPhone: "1", ExternalResponseID: "r"}},
		{"empty phone", &Request{BookingID: 1, CustomerName: "A", ExternalResponseID: "r"}},
		{"empty response id", &Request{BookingID: 1, CustomerName: "A", CustomerPhone: "1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
