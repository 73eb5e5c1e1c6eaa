package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrCalendarNotFound возвращается, когда календарь не найден или ссылка истекла
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrInvalidInput возвращается при некорректных контактных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrIncompleteSelection возвращается, когда выбор не позволяет отправить бронирование
	ErrIncompleteSelection = errors.New("booking selection is incomplete")

	// ErrBookingRejected возвращается, когда сервер отклонил заявку (например, слот уже занят)
	ErrBookingRejected = errors.New("booking rejected")

	// ErrInternal возвращается, когда заявку не удалось отправить (можно повторить)
	ErrInternal = errors.New("usecase: internal error")
)

// RejectedError отказ сервера с сообщением для посетителя
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrBookingRejected, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrBookingRejected
}
