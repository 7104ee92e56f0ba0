package appointments

import "errors"

var (
	// ErrRefreshFailed возвращается, когда список записей получить не удалось
	// Кэш при этом очищается
	ErrRefreshFailed = errors.New("appointments: refresh failed")
)
