package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/pkg/types"
)

// TimeFormat формат отображения времени
type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12h"
	TimeFormat24h TimeFormat = "24h"
)

// ErrUnknownTimeFormat возвращается для неизвестного формата времени
var ErrUnknownTimeFormat = errors.New("views: unknown time format")

// ParseTimeFormat разбирает формат времени, пустая строка означает 24h
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch TimeFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", TimeFormat24h:
		return TimeFormat24h, nil
	case TimeFormat12h:
		return TimeFormat12h, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeFormat, s)
	}
}

// Time форматирует время: "9:00am" или "09:00"
func (f TimeFormat) Time(t types.TimeString) string {
	if f == TimeFormat12h {
		return t.Format12h()
	}
	return t.String()
}

// Hour форматирует начало часа
func (f TimeFormat) Hour(hour int) string {
	return f.Time(types.HourStart(hour))
}

// Labeler строит подписи времени с учетом выбранного посетителем часового пояса
// Сдвигаются только подписи, значения слотов для отправки на сервер не меняются
type Labeler struct {
	Format  TimeFormat
	Owner   *time.Location // часовой пояс календаря
	Display *time.Location // часовой пояс посетителя, nil - без сдвига
}

// Label возвращает подпись времени t в дате date
func (l Labeler) Label(date time.Time, t types.TimeString) string {
	return l.Format.Time(l.shift(date, t))
}

// Range возвращает подпись интервала "09:00 - 10:00"
func (l Labeler) Range(date time.Time, start, end types.TimeString) string {
	return l.Label(date, start) + " - " + l.Label(date, end)
}

func (l Labeler) shift(date time.Time, t types.TimeString) types.TimeString {
	if l.Display == nil || l.Owner == nil || l.Display.String() == l.Owner.String() {
		return t
	}
	minutes := t.Minutes()
	if minutes < 0 {
		return t
	}

	instant := time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, l.Owner)
	return types.NewTimeString(instant.In(l.Display))
}

// LongDate "Monday, June 3, 2024"
func LongDate(d time.Time) string {
	return d.Format("Monday, January 2, 2006")
}

// ShortDate "Mon, Jun 3"
func ShortDate(d time.Time) string {
	return d.Format("Mon, Jan 2")
}

// MonthTitle "June 2024"
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// Summary описание выбранного бронирования для подтверждения
//
//	time_slots: "Monday, June 3, 2024 at 09:00 - 10:00"
//	full_day:   "Monday, June 3, 2024" или "Monday, June 3, 2024 - Wednesday, June 5, 2024"
func Summary(req domain.BookingRequest) string {
	date := LongDate(req.Date)

	if req.Mode.IsTimeSlots() && req.Slot != nil {
		return fmt.Sprintf("%s at %s - %s", date, req.Slot.StartTime, req.Slot.EndTime)
	}

	if req.Mode == domain.BookingModeFullDay && req.IsRange() {
		return fmt.Sprintf("%s - %s", date, LongDate(*req.EndDate))
	}

	return date
}

// HeaderRange заголовок диапазона дат сетки
//
//	"Jun 3 - 9, 2024", "May 30 - Jun 5, 2024", "Dec 30, 2024 - Jan 5, 2025"
func HeaderRange(start, end time.Time) string {
	switch {
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%s %d - %d, %d", start.Format("Jan"), start.Day(), end.Day(), start.Year())
	case start.Year() == end.Year():
		return fmt.Sprintf("%s %d - %s %d, %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day(), start.Year())
	default:
		return fmt.Sprintf("%s %d, %d - %s %d, %d", start.Format("Jan"), start.Day(), start.Year(), end.Format("Jan"), end.Day(), end.Year())
	}
}

func sameDay(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}
