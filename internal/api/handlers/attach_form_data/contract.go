package attach_form_data

import (
	"context"

	attachFormData "github.com/velmark/NST-BookingService/internal/usecase/attach_form_data"
)

type AttachFormDataUseCase interface {
	Execute(ctx context.Context, req *attachFormData.Request) (*attachFormData.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
