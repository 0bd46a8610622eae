package release_expired

import "errors"

var (
	// ErrInternal возвращается, когда не удалось получить список просроченных черновиков
	ErrInternal = errors.New("release_expired: internal error")
)
