package publiccalendar

import (
	"errors"
	"fmt"
)

var (
	// ErrCalendarNotFound возвращается, когда токен не существует, календарь отключен или ссылка истекла
	ErrCalendarNotFound = errors.New("publiccalendar client: calendar not found or expired")

	// ErrBookingRejected возвращается, когда сервер отклонил заявку на бронирование
	ErrBookingRejected = errors.New("publiccalendar client: booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (запрос не дошел до сервера)
	ErrInternal = errors.New("publiccalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("publiccalendar client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что данные недоступны и вызывающая сторона должна показать пустой результат
	ErrServiceDegraded = errors.New("publiccalendar unavailable: graceful degradation applied")
)

// RejectedError отказ сервера с человекочитаемым сообщением (например, слот уже занят)
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%v (status=%d): %s", ErrBookingRejected, e.Status, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrBookingRejected
}
