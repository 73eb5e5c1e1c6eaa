package booker

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// Reduce применяет событие к состоянию и возвращает новое состояние
// Исходное состояние не изменяется. При ошибке возвращается исходное состояние
func Reduce(s State, e Event) (State, error) {
	if s.IsConfirmed() {
		return s, ErrConfirmed
	}

	var (
		next State
		err  error
	)
	switch ev := e.(type) {
	case SelectDate:
		next, err = selectDate(s, truncateDay(ev.Date))
	case SelectSlot:
		next, err = selectSlot(s, ev)
	case Cancel:
		next, err = cancel(s), nil
	case ChangeLayout:
		next, err = changeLayout(s, ev.Layout)
	case Navigate:
		next, err = navigate(s, ev.Direction)
	case Today:
		next, err = today(s, truncateDay(ev.Date)), nil
	case Confirm:
		next, err = confirm(s, ev.Summary)
	default:
		return s, fmt.Errorf("%w: %T", ErrInvalidEvent, e)
	}

	if err != nil {
		return s, err
	}
	return next, nil
}

func selectDate(s State, date time.Time) (State, error) {
	if date.IsZero() {
		return s, fmt.Errorf("%w: date is required", ErrInvalidEvent)
	}

	if s.Layout.IsGrid() {
		if s.Mode == domain.BookingModeFullDay {
			// В сетках бронирование целых дней открывается в модальном окне
			booking := rangeClick(s.RangeSelection, s.Modal, date)
			s.Modal = &booking
			s.Step = SelectingDate{Date: &date}
			return s, nil
		}
		s.Anchor = date
		s.Modal = nil
		s.Step = SelectingDate{Date: &date}
		return s, nil
	}

	s.Month = MonthRef{Year: date.Year(), Month: date.Month()}

	if s.Mode.IsTimeSlots() {
		s.Step = SelectingTime{Date: date}
		return s, nil
	}

	var current *Booking
	if b, ok := s.Step.(Booking); ok {
		current = &b
	}
	s.Step = rangeClick(s.RangeSelection, current, date)
	return s, nil
}

// rangeClick реализует выбор дат в full_day:
// без диапазонов клик выбирает день, с диапазонами первый клик задает начало,
// второй - конец (с перестановкой, если конец раньше начала), третий начинает новый диапазон
func rangeClick(rangeSelection bool, current *Booking, date time.Time) Booking {
	if !rangeSelection {
		return Booking{Date: date}
	}

	if current == nil || !current.PendingEnd {
		return Booking{Date: date, PendingEnd: true}
	}

	start, end := current.Date, date
	if end.Before(start) {
		start, end = end, start
	}
	return Booking{Date: start, EndDate: &end}
}

func selectSlot(s State, ev SelectSlot) (State, error) {
	if !s.Mode.IsTimeSlots() {
		return s, fmt.Errorf("%w: full day calendar has no time slots", ErrInvalidEvent)
	}
	if !ev.Slot.IsAvailable() {
		return s, fmt.Errorf("%w: slot is not available", ErrInvalidEvent)
	}

	slot := ev.Slot

	if s.Layout.IsGrid() {
		if ev.Date.IsZero() {
			return s, fmt.Errorf("%w: date is required", ErrInvalidEvent)
		}
		date := truncateDay(ev.Date)
		s.Modal = &Booking{Date: date, Slot: &slot}
		s.Step = SelectingDate{Date: &date}
		return s, nil
	}

	selected := s.SelectedDate()
	if selected == nil {
		return s, fmt.Errorf("%w: select a date first", ErrInvalidEvent)
	}
	if !ev.Date.IsZero() && !truncateDay(ev.Date).Equal(*selected) {
		return s, fmt.Errorf("%w: slot belongs to another date", ErrInvalidEvent)
	}

	s.Step = Booking{Date: *selected, Slot: &slot}
	return s, nil
}

func cancel(s State) State {
	if s.Layout.IsGrid() {
		s.Modal = nil
		return s
	}

	switch step := s.Step.(type) {
	case Booking:
		if s.Mode.IsTimeSlots() {
			s.Step = SelectingTime{Date: step.Date}
		} else {
			s.Step = SelectingDate{}
		}
	case SelectingTime:
		s.Step = SelectingDate{}
	}
	return s
}

func changeLayout(s State, layout Layout) (State, error) {
	if _, err := ParseLayout(string(layout)); err != nil {
		return s, err
	}
	if layout == "" {
		layout = LayoutMonth
	}
	if layout == s.Layout {
		return s, nil
	}

	selected := s.SelectedDate()
	s.Layout = layout
	s.Modal = nil

	if layout.IsGrid() {
		if selected != nil {
			date := *selected
			s.Anchor = date
			s.Step = SelectingDate{Date: &date}
		} else {
			s.Step = SelectingDate{}
		}
		return s, nil
	}

	// Возврат в месячное представление
	s.Step = SelectingDate{}
	if selected != nil {
		s.Month = MonthRef{Year: selected.Year(), Month: selected.Month()}
		if s.Mode.IsTimeSlots() {
			s.Step = SelectingTime{Date: *selected}
		}
	}
	return s, nil
}

func navigate(s State, dir Direction) (State, error) {
	if dir != Prev && dir != Next {
		return s, fmt.Errorf("%w: unknown direction %d", ErrInvalidEvent, dir)
	}

	if s.Layout.IsGrid() {
		s.Anchor = s.Anchor.AddDate(0, 0, int(dir)*s.Layout.NavigateDays())
		s.Modal = nil
		return s, nil
	}

	s.Month = s.Month.Shift(int(dir))
	return s, nil
}

func today(s State, date time.Time) State {
	if s.Layout.IsGrid() {
		s.Anchor = date
		s.Modal = nil
		return s
	}
	s.Month = MonthRef{Year: date.Year(), Month: date.Month()}
	return s
}

func confirm(s State, summary string) (State, error) {
	booking := s.CurrentBooking()
	if booking == nil {
		return s, ErrNothingToConfirm
	}
	if err := booking.Complete(s.Mode); err != nil {
		return s, err
	}

	s.Step = Confirmed{Booking: *booking, Summary: summary}
	s.Modal = nil
	return s, nil
}
