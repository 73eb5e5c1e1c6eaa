package booker

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/pkg/ptr"
	"github.com/m04kA/SMC-PublicBooker/pkg/types"
)

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func slot(id int64, start, end types.TimeString) domain.TimeSlot {
	return domain.TimeSlot{ID: ptr.Ptr(id), StartTime: start, EndTime: end, Status: domain.SlotAvailable}
}

func slotsCalendar() *domain.CalendarInfo {
	return &domain.CalendarInfo{ID: 1, BookingMode: domain.BookingModeTimeSlots}
}

func fullDayCalendar(ranges bool) *domain.CalendarInfo {
	return &domain.CalendarInfo{ID: 2, BookingMode: domain.BookingModeFullDay, AllowRangeSelection: ranges}
}

func mustReduce(t *testing.T, s State, events ...Event) State {
	t.Helper()
	for _, e := range events {
		var err error
		s, err = Reduce(s, e)
		require.NoError(t, err, "event %T", e)
	}
	return s
}

func TestReduce_TimeSlotsMonthFlow(t *testing.T) {
	s := New(slotsCalendar(), LayoutMonth, day(1))
	assert.Equal(t, StepSelectingDate, s.Step.Kind())

	s = mustReduce(t, s, SelectDate{Date: day(3)})
	assert.Equal(t, SelectingTime{Date: day(3)}, s.Step)

	s = mustReduce(t, s, SelectSlot{Slot: slot(1, "09:00", "10:00")})
	booking, ok := s.Step.(Booking)
	require.True(t, ok)
	assert.Equal(t, day(3), booking.Date)
	assert.Equal(t, "09:00", booking.Slot.StartTime.String())

	s = mustReduce(t, s, Cancel{})
	assert.Equal(t, SelectingTime{Date: day(3)}, s.Step)

	// Новая дата сбрасывает слот
	s = mustReduce(t, s, SelectSlot{Slot: slot(1, "09:00", "10:00")}, SelectDate{Date: day(4)})
	assert.Equal(t, SelectingTime{Date: day(4)}, s.Step)
}

func TestReduce_FullDayGoesStraightToBooking(t *testing.T) {
	s := New(fullDayCalendar(false), LayoutMonth, day(1))

	s = mustReduce(t, s, SelectDate{Date: day(10)})
	assert.Equal(t, Booking{Date: day(10)}, s.Step)

	_, err := Reduce(s, SelectSlot{Slot: slot(1, "09:00", "10:00")})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	s = mustReduce(t, s, Cancel{})
	assert.Equal(t, SelectingDate{}, s.Step)
	assert.Nil(t, s.SelectedDate())
}

func TestReduce_RangeSelection(t *testing.T) {
	s := New(fullDayCalendar(true), LayoutMonth, day(1))

	s = mustReduce(t, s, SelectDate{Date: day(12)})
	assert.Equal(t, Booking{Date: day(12), PendingEnd: true}, s.Step)

	_, err := s.Request(domain.Contact{Name: "A", Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrIncompleteRange)
	_, err = Reduce(s, Confirm{})
	assert.ErrorIs(t, err, ErrIncompleteRange)

	// Второй клик раньше первого: даты меняются местами
	s = mustReduce(t, s, SelectDate{Date: day(10)})
	booking := s.Step.(Booking)
	assert.Equal(t, day(10), booking.Date)
	require.NotNil(t, booking.EndDate)
	assert.Equal(t, day(12), *booking.EndDate)
	assert.False(t, booking.PendingEnd)

	req, err := s.Request(domain.Contact{Name: "A", Email: "a@b.co"})
	require.NoError(t, err)
	assert.True(t, req.IsRange())
	assert.Nil(t, req.Slot)

	// Третий клик начинает новый диапазон
	s = mustReduce(t, s, SelectDate{Date: day(20)})
	assert.Equal(t, Booking{Date: day(20), PendingEnd: true}, s.Step)
}

func TestReduce_ConfirmedIsTerminal(t *testing.T) {
	s := New(slotsCalendar(), LayoutMonth, day(1))
	s = mustReduce(t, s,
		SelectDate{Date: day(3)},
		SelectSlot{Slot: slot(1, "09:00", "10:00")},
		Confirm{Summary: "Monday, June 3, 2024 at 09:00 - 10:00"},
	)

	confirmed, ok := s.Step.(Confirmed)
	require.True(t, ok)
	assert.Equal(t, "Monday, June 3, 2024 at 09:00 - 10:00", confirmed.Summary)

	events := []Event{
		SelectDate{Date: day(5)}, SelectSlot{Slot: slot(2, "10:00", "11:00")}, Cancel{},
		ChangeLayout{Layout: LayoutWeek}, Navigate{Direction: Next}, Today{Date: day(1)}, Confirm{},
	}
	for _, e := range events {
		next, err := Reduce(s, e)
		assert.ErrorIs(t, err, ErrConfirmed)
		assert.Equal(t, s, next)
	}
}

func TestReduce_ConfirmRequiresBooking(t *testing.T) {
	s := New(slotsCalendar(), LayoutMonth, day(1))
	s = mustReduce(t, s, SelectDate{Date: day(3)})

	_, err := Reduce(s, Confirm{})
	assert.ErrorIs(t, err, ErrNothingToConfirm)
}

func TestReduce_GridUsesModal(t *testing.T) {
	s := New(slotsCalendar(), LayoutWeek, day(3))

	s = mustReduce(t, s, SelectSlot{Date: day(5), Slot: domain.TimeSlot{StartTime: "11:00", EndTime: "12:00", Status: domain.SlotAvailable}})
	assert.Equal(t, StepSelectingDate, s.Step.Kind())
	require.NotNil(t, s.Modal)
	assert.Equal(t, day(5), s.Modal.Date)
	assert.Equal(t, day(3), s.Anchor, "slot click must not move the window")

	s = mustReduce(t, s, Cancel{})
	assert.Nil(t, s.Modal)

	s = mustReduce(t, s, Navigate{Direction: Next})
	assert.Equal(t, day(10), s.Anchor)

	// Смена представления переносит окно на выбранную дату
	s = mustReduce(t, s, ChangeLayout{Layout: LayoutColumn})
	assert.Equal(t, day(5), s.Anchor)

	s = mustReduce(t, s, Navigate{Direction: Prev})
	assert.Equal(t, day(2), s.Anchor)

	s = mustReduce(t, s, Today{Date: day(1)})
	assert.Equal(t, day(1), s.Anchor)
}

func TestReduce_GridConfirm(t *testing.T) {
	s := New(slotsCalendar(), LayoutColumn, day(3))
	s = mustReduce(t, s,
		SelectSlot{Date: day(4), Slot: slot(7, "14:00", "15:00")},
		Confirm{Summary: "ok"},
	)

	confirmed := s.Step.(Confirmed)
	assert.Equal(t, day(4), confirmed.Booking.Date)
	assert.Nil(t, s.Modal)
}

func TestReduce_ChangeLayoutPreservesDate(t *testing.T) {
	s := New(slotsCalendar(), LayoutMonth, day(1))
	s = mustReduce(t, s, SelectDate{Date: day(12)}, SelectSlot{Slot: slot(1, "09:00", "10:00")})

	s = mustReduce(t, s, ChangeLayout{Layout: LayoutWeek})
	assert.Equal(t, day(12), s.Anchor)
	assert.Equal(t, StepSelectingDate, s.Step.Kind())
	assert.Nil(t, s.CurrentBooking())

	s = mustReduce(t, s, ChangeLayout{Layout: LayoutMonth})
	assert.Equal(t, SelectingTime{Date: day(12)}, s.Step)
	assert.Equal(t, MonthRef{Year: 2024, Month: time.June}, s.Month)

	_, err := Reduce(s, ChangeLayout{Layout: "agenda"})
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestReduce_MonthNavigation(t *testing.T) {
	s := New(fullDayCalendar(false), LayoutMonth, time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC))

	s = mustReduce(t, s, Navigate{Direction: Next})
	assert.Equal(t, MonthRef{Year: 2025, Month: time.January}, s.Month)

	s = mustReduce(t, s, Navigate{Direction: Prev}, Navigate{Direction: Prev})
	assert.Equal(t, MonthRef{Year: 2024, Month: time.November}, s.Month)

	s = mustReduce(t, s, Today{Date: day(1)})
	assert.Equal(t, MonthRef{Year: 2024, Month: time.June}, s.Month)
}

func TestReduce_Invariants(t *testing.T) {
	calendars := []*domain.CalendarInfo{slotsCalendar(), fullDayCalendar(false), fullDayCalendar(true)}
	layouts := []Layout{LayoutMonth, LayoutWeek, LayoutColumn}
	rnd := rand.New(rand.NewSource(42))

	randomEvent := func() Event {
		switch rnd.Intn(7) {
		case 0, 1:
			return SelectDate{Date: day(1 + rnd.Intn(28))}
		case 2:
			h := rnd.Intn(23)
			return SelectSlot{Date: day(1 + rnd.Intn(28)), Slot: domain.TimeSlot{
				StartTime: types.HourStart(h), EndTime: types.HourStart(h + 1), Status: domain.SlotAvailable,
			}}
		case 3:
			return Cancel{}
		case 4:
			return ChangeLayout{Layout: layouts[rnd.Intn(len(layouts))]}
		case 5:
			return Navigate{Direction: []Direction{Prev, Next}[rnd.Intn(2)]}
		default:
			return Confirm{Summary: "done"}
		}
	}

	for _, calendar := range calendars {
		for run := 0; run < 200; run++ {
			s := New(calendar, layouts[rnd.Intn(len(layouts))], day(1))
			for i := 0; i < 30; i++ {
				next, err := Reduce(s, randomEvent())
				if err != nil {
					assert.Equal(t, s, next, "failed event must not change state")
					continue
				}
				s = next
				checkInvariants(t, s)
			}
		}
	}
}

func checkInvariants(t *testing.T, s State) {
	t.Helper()

	bookings := []*Booking{s.Modal}
	if b, ok := s.Step.(Booking); ok {
		bookings = append(bookings, &b)
	}
	if c, ok := s.Step.(Confirmed); ok {
		bookings = append(bookings, &c.Booking)
		assert.NoError(t, c.Booking.Complete(s.Mode))
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		if s.Mode == domain.BookingModeFullDay {
			assert.Nil(t, b.Slot, "full day booking holds a slot")
		} else {
			assert.NotNil(t, b.Slot, "slot booking without slot")
			assert.Nil(t, b.EndDate)
		}
		if b.EndDate != nil {
			assert.False(t, b.EndDate.Before(b.Date), "end before start")
		}
		if !s.RangeSelection {
			assert.False(t, b.PendingEnd)
		}
	}

	if s.Layout.IsGrid() {
		assert.Contains(t, []StepKind{StepSelectingDate, StepConfirmed}, s.Step.Kind())
	} else {
		assert.Nil(t, s.Modal)
	}
}

func TestSequencer(t *testing.T) {
	seq := NewSequencer()

	first := seq.Next(ChannelDay)
	second := seq.Next(ChannelDay)
	week := seq.Next(ChannelWeek)

	assert.False(t, seq.IsCurrent(first))
	assert.True(t, seq.IsCurrent(second))
	assert.True(t, seq.IsCurrent(week))
}

func TestSnapshot(t *testing.T) {
	s := New(fullDayCalendar(true), LayoutMonth, day(1))
	s = mustReduce(t, s, SelectDate{Date: day(10)}, SelectDate{Date: day(12)})

	snap := s.Snapshot()
	assert.Equal(t, StepBooking, snap.Step)
	assert.Equal(t, "2024-06-10", snap.SelectedDate)
	require.NotNil(t, snap.Booking)
	assert.Equal(t, "2024-06-12", snap.Booking.EndDate)
	assert.False(t, snap.ModalOpen)
}
