package registry

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных записи
	ErrInvalidInput = errors.New("registry: invalid input data")

	// ErrInvalidSlot возвращается для слота, которого нет в каталоге
	ErrInvalidSlot = errors.New("registry: invalid time slot")

	// ErrSlotFull возвращается, когда в слоте не осталось мест
	ErrSlotFull = errors.New("registry: slot is full")

	// ErrInvalidStatus возвращается для неизвестного статуса
	ErrInvalidStatus = errors.New("registry: invalid status")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("registry: appointment not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("registry: internal error")
)
