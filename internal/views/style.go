package views

import "github.com/m04kA/SMC-PublicBooker/internal/domain"

// Style визуальный стиль ячейки дня
type Style string

const (
	StyleAvailable   Style = "available"
	StyleBooked      Style = "booked"
	StylePast        Style = "past"
	StyleBlocked     Style = "blocked"
	StyleUnavailable Style = "unavailable"
)

// StyleFor возвращает стиль для статуса дня
// Неизвестные статусы отображаются как недоступные
func StyleFor(status domain.DayStatus) Style {
	switch status {
	case domain.DayAvailable:
		return StyleAvailable
	case domain.DayBooked, domain.DayFullyBooked:
		return StyleBooked
	case domain.DayPast:
		return StylePast
	case domain.DayBlocked:
		return StyleBlocked
	case domain.DayClosed, domain.DayTooSoon, domain.DayTooFar, domain.DayUnavailable:
		return StyleUnavailable
	default:
		return StyleUnavailable
	}
}
