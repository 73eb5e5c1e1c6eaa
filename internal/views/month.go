package views

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// WeekdayNames заголовки колонок месячной сетки (неделя начинается с воскресенья)
var WeekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthRef ссылка на месяц для навигации
type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthCell ячейка месячной сетки
// Пустые ячейки (Blank) выравнивают первый день месяца по дню недели
type MonthCell struct {
	Blank      bool             `json:"blank"`
	Date       string           `json:"date,omitempty"`
	Day        int              `json:"day,omitempty"`
	Status     domain.DayStatus `json:"status,omitempty"`
	Style      Style            `json:"style,omitempty"`
	Selectable bool             `json:"selectable"`
	Today      bool             `json:"today,omitempty"`
	Selected   bool             `json:"selected,omitempty"`
	InRange    bool             `json:"inRange,omitempty"`
	HasSlots   bool             `json:"hasSlots,omitempty"`
}

// MonthView месячная сетка
type MonthView struct {
	Title    string      `json:"title"`
	Year     int         `json:"year"`
	Month    time.Month  `json:"month"`
	Weekdays []string    `json:"weekdays"`
	Cells    []MonthCell `json:"cells"`
	Prev     MonthRef    `json:"prev"`
	Next     MonthRef    `json:"next"`
	Degraded bool        `json:"degraded,omitempty"`
}

// DateSelection выбранная дата или диапазон дат
type DateSelection struct {
	Start *time.Time
	End   *time.Time
}

func (s DateSelection) contains(date time.Time) (selected, inRange bool) {
	if s.Start == nil {
		return false, false
	}
	if sameDay(date, *s.Start) {
		return true, false
	}
	if s.End == nil {
		return false, false
	}
	if sameDay(date, *s.End) {
		return true, false
	}
	key := date.Format(domain.DateFormat)
	return false, key > s.Start.Format(domain.DateFormat) && key < s.End.Format(domain.DateFormat)
}

// BuildMonth строит месячную сетку
// Количество ячеек = дней в месяце + weekday(1-е число) пустых ячеек в начале
func BuildMonth(month domain.MonthAvailability, today time.Time, selection DateSelection) MonthView {
	normalized := month.Normalize()
	leading := int(normalized.FirstDay().Weekday())

	cells := make([]MonthCell, 0, leading+len(normalized.Days))
	for i := 0; i < leading; i++ {
		cells = append(cells, MonthCell{Blank: true})
	}

	for _, day := range normalized.Days {
		selected, inRange := selection.contains(day.Date)
		cells = append(cells, MonthCell{
			Date:       day.Key(),
			Day:        day.Date.Day(),
			Status:     day.Status,
			Style:      StyleFor(day.Status),
			Selectable: day.Status.IsSelectable(),
			Today:      sameDay(day.Date, today),
			Selected:   selected,
			InRange:    inRange,
			HasSlots:   day.SlotCount != nil && *day.SlotCount > 0,
		})
	}

	first := normalized.FirstDay()
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	return MonthView{
		Title:    MonthTitle(normalized.Year, normalized.Month),
		Year:     normalized.Year,
		Month:    normalized.Month,
		Weekdays: WeekdayNames,
		Cells:    cells,
		Prev:     MonthRef{Year: prev.Year(), Month: prev.Month()},
		Next:     MonthRef{Year: next.Year(), Month: next.Month()},
	}
}
