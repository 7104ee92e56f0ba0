package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных пациента или слота, запрос в сервис не отправляется
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingRejected возвращается, когда сервис записей отказал в создании записи
	// Текст отказа достается через appointmentservice.RejectionMessage
	ErrBookingRejected = errors.New("booking rejected")

	// ErrNetworkFailure возвращается, когда сервис записей недоступен
	ErrNetworkFailure = errors.New("appointment service unreachable")

	// ErrSubmissionInFlight возвращается, пока предыдущая отправка той же формы не завершилась
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
