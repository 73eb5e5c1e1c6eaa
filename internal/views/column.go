package views

import (
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/pkg/types"
)

// Column колонка дня с доступными слотами
type Column struct {
	Date     string     `json:"date"`
	DayName  string     `json:"dayName"`
	DayNum   int        `json:"dayNum"`
	Month    string     `json:"month"`
	Today    bool       `json:"today,omitempty"`
	Degraded bool       `json:"degraded,omitempty"`
	Slots    []SlotItem `json:"slots"`
}

// ColumnView колоночная сетка
type ColumnView struct {
	Header  string   `json:"header"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Columns []Column `json:"columns"`
}

// BuildColumns строит колоночную сетку: в каждой колонке только доступные слоты дня
func BuildColumns(days []domain.DaySlots, opts GridOptions) ColumnView {
	view := ColumnView{Columns: make([]Column, 0, len(days))}
	if len(days) > 0 {
		first, last := days[0].Date, days[len(days)-1].Date
		view.Header = HeaderRange(first, last)
		view.Start = first.Format(domain.DateFormat)
		view.End = last.Format(domain.DateFormat)
	}

	for _, day := range days {
		items := slotItems(day.Date, day.Slots, opts.Labels, nil)
		for i := range items {
			items[i].Selected = opts.Selected.matches(day.Date, types.TimeString(items[i].StartTime))
		}
		view.Columns = append(view.Columns, Column{
			Date:     day.Date.Format(domain.DateFormat),
			DayName:  day.Date.Format("Mon"),
			DayNum:   day.Date.Day(),
			Month:    day.Date.Format("Jan"),
			Today:    sameDay(day.Date, opts.Today),
			Degraded: day.Degraded,
			Slots:    items,
		})
	}

	return view
}
