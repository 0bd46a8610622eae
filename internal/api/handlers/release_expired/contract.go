package release_expired

import "context"

type ReleaseExpiredUseCase interface {
	Execute(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
