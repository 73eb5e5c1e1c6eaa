package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

const (
	markAvailable = "*"
	markToday     = "!"
	markNone      = "."
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func renderCalendar(out io.Writer, cal views.CalendarView) {
	tw := newTable(out)
	fmt.Fprintf(tw, "Calendar:\t%s\n", cal.Name)
	if cal.Owner != nil {
		fmt.Fprintf(tw, "Owner:\t%s\n", cal.Owner.Name)
		if cal.Owner.Location != nil {
			fmt.Fprintf(tw, "Location:\t%s\n", *cal.Owner.Location)
		}
	}
	if cal.Description != nil {
		fmt.Fprintf(tw, "About:\t%s\n", *cal.Description)
	}
	mode := cal.BookingMode
	if cal.SlotDurationMinutes != nil {
		mode = fmt.Sprintf("%s (%d min)", mode, *cal.SlotDurationMinutes)
	}
	if cal.AllowRangeSelection {
		mode += ", ranges allowed"
	}
	fmt.Fprintf(tw, "Booking:\t%s\n", mode)
	fmt.Fprintf(tw, "Timezone:\t%s\n", cal.Timezone)
	_ = tw.Flush()
}

// renderMonth печатает месяц сеткой 7 колонок: * доступный день
func renderMonth(out io.Writer, month views.MonthView) {
	fmt.Fprintln(out, month.Title)
	if month.Degraded {
		fmt.Fprintln(out, "(availability could not be loaded, showing all days unavailable)")
	}

	tw := newTable(out)
	fmt.Fprintln(tw, strings.Join(month.Weekdays, "\t"))

	row := make([]string, 0, 7)
	for _, cell := range month.Cells {
		row = append(row, monthCell(cell))
		if len(row) == 7 {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

func monthCell(cell views.MonthCell) string {
	if cell.Blank {
		return ""
	}
	s := fmt.Sprintf("%d", cell.Day)
	if cell.Selectable {
		s += markAvailable
	}
	if cell.Today {
		s += markToday
	}
	return s
}

func renderSlots(out io.Writer, list views.SlotListView) {
	fmt.Fprintln(out, list.Title)
	if list.Degraded {
		fmt.Fprintln(out, "(slots could not be loaded)")
		return
	}
	if len(list.Slots) == 0 {
		fmt.Fprintln(out, "No available times")
		return
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tTIME\tRANGE")
	for _, slot := range list.Slots {
		id := "-"
		if slot.ID != nil {
			id = fmt.Sprintf("%d", *slot.ID)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, slot.Label, slot.Range)
	}
	_ = tw.Flush()
}

// renderWeek печатает сетку часы x дни, показываются только часы, где есть хотя бы одна доступная ячейка
func renderWeek(out io.Writer, week views.WeekView) {
	fmt.Fprintln(out, week.Header)

	tw := newTable(out)
	header := []string{""}
	for _, day := range week.Days {
		header = append(header, fmt.Sprintf("%s %d", day.DayName, day.DayNum))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	printed := 0
	for i, hour := range week.Hours {
		row := []string{hour.Label}
		free := false
		for _, day := range week.Days {
			mark := markNone
			if i < len(day.Cells) && day.Cells[i].Available {
				mark = markAvailable
				free = true
			}
			row = append(row, mark)
		}
		if !free {
			continue
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
		printed++
	}
	_ = tw.Flush()

	if printed == 0 {
		fmt.Fprintln(out, "No available times")
	}
}

func renderColumns(out io.Writer, view views.ColumnView) {
	fmt.Fprintln(out, view.Header)
	for _, column := range view.Columns {
		fmt.Fprintf(out, "\n%s %d %s\n", column.DayName, column.DayNum, column.Month)
		switch {
		case column.Degraded:
			fmt.Fprintln(out, "  (slots could not be loaded)")
		case len(column.Slots) == 0:
			fmt.Fprintln(out, "  No available times")
		default:
			for _, slot := range column.Slots {
				fmt.Fprintf(out, "  %s\n", slot.Range)
			}
		}
	}
}
