package booker

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// Layout представление календаря, ортогональное шагу выбора
type Layout string

const (
	LayoutMonth  Layout = "month"
	LayoutWeek   Layout = "week"
	LayoutColumn Layout = "column"
)

// ParseLayout разбирает представление, пустая строка означает month
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutMonth:
		return LayoutMonth, nil
	case LayoutWeek:
		return LayoutWeek, nil
	case LayoutColumn:
		return LayoutColumn, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

// IsGrid возвращает true для недельной и колоночной сеток
func (l Layout) IsGrid() bool {
	return l == LayoutWeek || l == LayoutColumn
}

// NavigateDays шаг навигации сетки
func (l Layout) NavigateDays() int {
	switch l {
	case LayoutWeek:
		return domain.WeekNavigateDays
	case LayoutColumn:
		return domain.ColumnNavigateDay
	default:
		return 0
	}
}

// StepKind имя шага выбора
type StepKind string

const (
	StepSelectingDate StepKind = "selecting_date"
	StepSelectingTime StepKind = "selecting_time"
	StepBooking       StepKind = "booking"
	StepConfirmed     StepKind = "confirmed"
)

// Step шаг выбора: SelectingDate, SelectingTime, Booking или Confirmed
type Step interface {
	Kind() StepKind
	step()
}

// SelectingDate посетитель выбирает дату
// В сетках Date хранит последнюю выбранную дату
type SelectingDate struct {
	Date *time.Time
}

// SelectingTime дата выбрана, посетитель выбирает слот (только time_slots)
type SelectingTime struct {
	Date time.Time
}

// Booking выбор завершен, заполняется форма бронирования
// Slot задан только в режиме time_slots, EndDate - только для диапазона дат.
// PendingEnd = true, пока посетитель не выбрал вторую дату диапазона
type Booking struct {
	Date       time.Time
	EndDate    *time.Time
	Slot       *domain.TimeSlot
	PendingEnd bool
}

// Confirmed бронирование отправлено, состояние терминально
type Confirmed struct {
	Booking Booking
	Summary string
}

func (SelectingDate) Kind() StepKind { return StepSelectingDate }
func (SelectingTime) Kind() StepKind { return StepSelectingTime }
func (Booking) Kind() StepKind       { return StepBooking }
func (Confirmed) Kind() StepKind     { return StepConfirmed }

func (SelectingDate) step() {}
func (SelectingTime) step() {}
func (Booking) step()       {}
func (Confirmed) step()     {}

// Complete возвращает ошибку, если бронирование нельзя отправить
func (b Booking) Complete(mode domain.BookingMode) error {
	if b.PendingEnd {
		return ErrIncompleteRange
	}
	if mode.IsTimeSlots() && b.Slot == nil {
		return ErrNothingToConfirm
	}
	return nil
}

// MonthRef отображаемый месяц
type MonthRef struct {
	Year  int
	Month time.Month
}

// Shift сдвигает месяц на n
func (m MonthRef) Shift(n int) MonthRef {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthRef{Year: t.Year(), Month: t.Month()}
}

// State состояние букера
type State struct {
	Mode           domain.BookingMode
	RangeSelection bool
	Layout         Layout
	Step           Step
	Month          MonthRef  // отображаемый месяц (month)
	Anchor         time.Time // первый день окна сетки (week, column)
	Modal          *Booking  // модальное окно бронирования в сетках
}

// New создает начальное состояние для календаря
func New(calendar *domain.CalendarInfo, layout Layout, today time.Time) State {
	today = truncateDay(today)
	return State{
		Mode:           calendar.BookingMode,
		RangeSelection: calendar.RangeSelectionEnabled(),
		Layout:         layout,
		Step:           SelectingDate{},
		Month:          MonthRef{Year: today.Year(), Month: today.Month()},
		Anchor:         today,
	}
}

// SelectedDate возвращает выбранную дату, если она есть
func (s State) SelectedDate() *time.Time {
	if s.Modal != nil {
		return &s.Modal.Date
	}
	switch step := s.Step.(type) {
	case SelectingDate:
		return step.Date
	case SelectingTime:
		return &step.Date
	case Booking:
		return &step.Date
	case Confirmed:
		return &step.Booking.Date
	}
	return nil
}

// CurrentBooking возвращает бронирование в процессе заполнения (в шаге или в модальном окне)
func (s State) CurrentBooking() *Booking {
	if s.Modal != nil {
		b := *s.Modal
		return &b
	}
	if b, ok := s.Step.(Booking); ok {
		return &b
	}
	return nil
}

// IsConfirmed возвращает true в терминальном состоянии
func (s State) IsConfirmed() bool {
	_, ok := s.Step.(Confirmed)
	return ok
}

// WindowDays возвращает дни окна сетки начиная с Anchor
func (s State) WindowDays(days int) []time.Time {
	result := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		result = append(result, s.Anchor.AddDate(0, 0, i))
	}
	return result
}

// Request собирает запрос на бронирование из текущего выбора
func (s State) Request(contact domain.Contact) (domain.BookingRequest, error) {
	booking := s.CurrentBooking()
	if booking == nil {
		return domain.BookingRequest{}, ErrNothingToConfirm
	}
	if err := booking.Complete(s.Mode); err != nil {
		return domain.BookingRequest{}, err
	}

	req := domain.BookingRequest{
		Mode:    s.Mode,
		Contact: contact,
		Date:    booking.Date,
	}
	if s.Mode.IsTimeSlots() {
		slot := *booking.Slot
		req.Slot = &slot
	} else if booking.EndDate != nil {
		end := *booking.EndDate
		req.EndDate = &end
	}
	return req, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
