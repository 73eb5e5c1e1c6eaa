package get_month

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда календарь не найден или ссылка истекла
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
