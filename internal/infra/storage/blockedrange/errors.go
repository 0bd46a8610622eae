package blockedrange

import "errors"

var (
	// ErrRangeNotFound возвращается, когда закрытый диапазон не найден
	ErrRangeNotFound = errors.New("blockedrange.repository: blocked range not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockedrange.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockedrange.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockedrange.repository: failed to scan row")
)
