package load_calendar

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда календарь не найден, отключен или ссылка истекла
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается, когда календарь не удалось загрузить (можно повторить)
	ErrInternal = errors.New("usecase: internal error")
)
