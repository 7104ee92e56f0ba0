package catalog

import "errors"

var (
	// ErrUnknownSlot возвращается, когда слота с таким ID нет в каталоге
	ErrUnknownSlot = errors.New("catalog: unknown slot")

	// ErrInvalidCatalog возвращается при некорректном описании слотов
	ErrInvalidCatalog = errors.New("catalog: invalid slot definitions")
)
