package sessions

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions возвращается при превышении лимита активных сессий
	ErrTooManySessions = errors.New("too many active sessions")

	// ErrInvalidInput возвращается при некорректных параметрах сессии
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCalendarNotFound возвращается, когда календарь не найден или ссылка истекла
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrInvalidAction возвращается для некорректного или недопустимого действия
	ErrInvalidAction = errors.New("invalid action")

	// ErrDateNotSelectable возвращается при выборе недоступной даты
	ErrDateNotSelectable = errors.New("date is not available for booking")

	// ErrSlotNotFound возвращается, когда выбранный слот отсутствует среди доступных
	ErrSlotNotFound = errors.New("time slot is not available")

	// ErrSubmitInProgress возвращается при повторной отправке, пока первая не завершилась
	ErrSubmitInProgress = errors.New("booking submission already in progress")

	// ErrAlreadyConfirmed возвращается после успешной отправки бронирования
	ErrAlreadyConfirmed = errors.New("booking already confirmed")

	// ErrIncompleteSelection возвращается, когда выбор не позволяет отправить бронирование
	ErrIncompleteSelection = errors.New("booking selection is incomplete")

	// ErrBookingRejected возвращается, когда сервер отклонил заявку
	ErrBookingRejected = errors.New("booking rejected")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
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
