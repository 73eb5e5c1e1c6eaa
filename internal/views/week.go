package views

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/pkg/types"
)

// SlotSelection выбранный слот в сетке (дата + время начала)
type SlotSelection struct {
	Date  time.Time
	Start types.TimeString
}

func (s *SlotSelection) matches(date time.Time, start types.TimeString) bool {
	return s != nil && sameDay(s.Date, date) && s.Start == start
}

// GridOptions параметры построения недельной и колоночной сеток
type GridOptions struct {
	Labels    Labeler
	Today     time.Time
	Selected  *SlotSelection
	StartHour int // первый отображаемый час (по умолчанию 0)
	EndHour   int // последний отображаемый час, 0 означает 23
}

func (o GridOptions) hours() (int, int) {
	start, end := o.StartHour, o.EndHour
	if start < 0 || start > domain.HoursPerDay-1 {
		start = 0
	}
	if end <= 0 || end > domain.HoursPerDay-1 {
		end = domain.HoursPerDay - 1
	}
	if end < start {
		start, end = 0, domain.HoursPerDay-1
	}
	return start, end
}

// HourLabel подпись строки часа
type HourLabel struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

// HourCell ячейка недельной сетки
type HourCell struct {
	Hour      int    `json:"hour"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected,omitempty"`
}

// WeekDay колонка дня недельной сетки
type WeekDay struct {
	Date     string     `json:"date"`
	DayName  string     `json:"dayName"`
	DayNum   int        `json:"dayNum"`
	Month    string     `json:"month"`
	Today    bool       `json:"today,omitempty"`
	Degraded bool       `json:"degraded,omitempty"`
	Cells    []HourCell `json:"cells"`
}

// WeekView недельная сетка: дни x часы
type WeekView struct {
	Header string      `json:"header"`
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Hours  []HourLabel `json:"hours"`
	Days   []WeekDay   `json:"days"`
}

// BuildWeek строит недельную сетку
// Ячейка часа доступна, только если есть доступный слот с start_time <= HH:00 < end_time
func BuildWeek(days []domain.DaySlots, opts GridOptions) WeekView {
	firstHour, lastHour := opts.hours()

	view := WeekView{
		Hours: make([]HourLabel, 0, lastHour-firstHour+1),
		Days:  make([]WeekDay, 0, len(days)),
	}
	if len(days) > 0 {
		first, last := days[0].Date, days[len(days)-1].Date
		view.Header = HeaderRange(first, last)
		view.Start = first.Format(domain.DateFormat)
		view.End = last.Format(domain.DateFormat)
	}

	for hour := firstHour; hour <= lastHour; hour++ {
		view.Hours = append(view.Hours, HourLabel{
			Hour:  hour,
			Label: opts.Labels.Label(dateOrZero(days), types.HourStart(hour)),
		})
	}

	for _, day := range days {
		column := WeekDay{
			Date:     day.Date.Format(domain.DateFormat),
			DayName:  strings.ToUpper(day.Date.Format("Mon")),
			DayNum:   day.Date.Day(),
			Month:    strings.ToUpper(day.Date.Format("Jan")),
			Today:    sameDay(day.Date, opts.Today),
			Degraded: day.Degraded,
			Cells:    make([]HourCell, 0, lastHour-firstHour+1),
		}
		for hour := firstHour; hour <= lastHour; hour++ {
			start := types.HourStart(hour)
			column.Cells = append(column.Cells, HourCell{
				Hour:      hour,
				Time:      start.String(),
				Available: coveringSlot(day.Slots, start) != nil,
				Selected:  opts.Selected.matches(day.Date, start),
			})
		}
		view.Days = append(view.Days, column)
	}

	return view
}

// ResolveHourClick превращает клик по часу в слот
// Если доступный слот начинается ровно в этот час, возвращается он сам (с ID).
// Иначе строится виртуальный слот без ID: от начала часа до min(час+1, конец покрывающего слота).
// false означает, что час недоступен и клик игнорируется
func ResolveHourClick(slots []domain.TimeSlot, hour int) (domain.TimeSlot, bool) {
	if hour < 0 || hour >= domain.HoursPerDay {
		return domain.TimeSlot{}, false
	}
	start := types.HourStart(hour)

	for _, slot := range slots {
		if slot.IsAvailable() && slot.StartTime == start {
			return slot, true
		}
	}

	covering := coveringSlot(slots, start)
	if covering == nil {
		return domain.TimeSlot{}, false
	}

	end, err := start.AddMinutes(60)
	if err != nil {
		return domain.TimeSlot{}, false
	}
	if covering.EndTime.IsBefore(end) {
		end = covering.EndTime
	}

	return domain.TimeSlot{
		StartTime: start,
		EndTime:   end,
		Status:    domain.SlotAvailable,
	}, true
}

func coveringSlot(slots []domain.TimeSlot, t types.TimeString) *domain.TimeSlot {
	for i := range slots {
		if slots[i].IsAvailable() && slots[i].Covers(t) {
			return &slots[i]
		}
	}
	return nil
}

func dateOrZero(days []domain.DaySlots) time.Time {
	if len(days) == 0 {
		return time.Time{}
	}
	return days[0].Date
}
