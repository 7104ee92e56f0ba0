package appointmentservice

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable возвращается, когда сервис записей недоступен (сеть, timeout, отмена запроса)
	ErrUnavailable = errors.New("appointmentservice: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")

	// ErrRejected возвращается, когда сервис ответил кодом, отличным от 2xx
	ErrRejected = errors.New("appointmentservice: request rejected")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что проверку слота выполнить не удалось и решение о записи сервер не подтвердил
	ErrServiceDegraded = errors.New("appointmentservice unavailable: graceful degradation applied")
)

// RejectedError отказ сервиса записей с текстом из поля message
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrRejected, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrRejected, e.StatusCode, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
