package select_date

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRefreshFailed возвращается, когда не удалось загрузить записи на дату
	ErrRefreshFailed = errors.New("failed to load appointments")
)
