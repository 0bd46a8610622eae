package attach_form_data

import (
	attachFormData "github.com/velmark/NST-BookingService/internal/usecase/attach_form_data"
)

// AttachFormDataRequest HTTP request model
type AttachFormDataRequest struct {
	CustomerName       string `json:"customerName"`
	CustomerPhone      string `json:"customerPhone"`
	ExternalResponseID string `json:"externalResponseId"`
}

// AttachFormDataResponse HTTP response model
type AttachFormDataResponse struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	Status        string `json:"status"`
	CustomerID    *int64 `json:"customerId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AttachFormDataRequest) ToUseCaseRequest(bookingID int64) *attachFormData.Request {
	return &attachFormData.Request{
		BookingID:          bookingID,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		ExternalResponseID: r.ExternalResponseID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *attachFormData.Response) *AttachFormDataResponse {
	return &AttachFormDataResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		Status:        resp.Status,
		CustomerID:    resp.CustomerID,
	}
}
