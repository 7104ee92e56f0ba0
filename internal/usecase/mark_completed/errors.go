package mark_completed

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUpdateFailed возвращается, когда сервис записей не изменил статус (отказ или недоступность)
	ErrUpdateFailed = errors.New("failed to update appointment status")
)
