package booker

import "errors"

var (
	// ErrConfirmed возвращается для любого события после подтверждения бронирования
	ErrConfirmed = errors.New("booker: booking already confirmed")

	// ErrIncompleteRange возвращается при подтверждении диапазона без второй даты
	ErrIncompleteRange = errors.New("booker: date range is incomplete")

	// ErrNothingToConfirm возвращается, когда бронирование еще не выбрано
	ErrNothingToConfirm = errors.New("booker: nothing to confirm")

	// ErrInvalidEvent возвращается, когда событие недопустимо в текущем состоянии
	ErrInvalidEvent = errors.New("booker: event is not allowed in current state")

	// ErrUnknownLayout возвращается для неизвестного представления
	ErrUnknownLayout = errors.New("booker: unknown layout")
)
