package views

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/pkg/ptr"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonth_CellCount(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		leading int
		days    int
	}{
		{name: "june 2024 starts on saturday", year: 2024, month: time.June, leading: 6, days: 30},
		{name: "february 2026 starts on sunday", year: 2026, month: time.February, leading: 0, days: 28},
		{name: "leap february", year: 2024, month: time.February, leading: 4, days: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildMonth(domain.EmptyMonth(tt.year, tt.month), day(2024, time.January, 1), DateSelection{})
			require.Len(t, view.Cells, tt.leading+tt.days)

			for i := 0; i < tt.leading; i++ {
				assert.True(t, view.Cells[i].Blank)
			}
			assert.Equal(t, 1, view.Cells[tt.leading].Day)
			assert.Equal(t, StyleBlocked, view.Cells[tt.leading].Style)
			assert.False(t, view.Cells[tt.leading].Selectable)
		})
	}
}

func TestBuildMonth_Flags(t *testing.T) {
	month := domain.MonthAvailability{
		Year:  2024,
		Month: time.June,
		Days: []domain.DayAvailability{
			{Date: day(2024, time.June, 3), Status: domain.DayAvailable, SlotCount: ptr.Ptr(2)},
			{Date: day(2024, time.June, 4), Status: domain.DayBooked},
			{Date: day(2024, time.June, 5), Status: domain.DayAvailable},
			{Date: day(2024, time.June, 6), Status: domain.DayStatus("maintenance")},
		},
	}
	start, end := day(2024, time.June, 3), day(2024, time.June, 5)

	view := BuildMonth(month, day(2024, time.June, 4), DateSelection{Start: &start, End: &end})

	assert.Equal(t, "June 2024", view.Title)
	assert.Equal(t, MonthRef{Year: 2024, Month: time.May}, view.Prev)
	assert.Equal(t, MonthRef{Year: 2024, Month: time.July}, view.Next)

	const leading = 6
	june3 := view.Cells[leading+2]
	assert.True(t, june3.Selectable)
	assert.True(t, june3.Selected)
	assert.True(t, june3.HasSlots)

	june4 := view.Cells[leading+3]
	assert.False(t, june4.Selectable)
	assert.True(t, june4.Today)
	assert.True(t, june4.InRange)
	assert.Equal(t, StyleBooked, june4.Style)

	assert.True(t, view.Cells[leading+4].Selected)
	assert.Equal(t, StyleUnavailable, view.Cells[leading+5].Style)
}

func TestBuildMonth_YearBoundaries(t *testing.T) {
	view := BuildMonth(domain.EmptyMonth(2024, time.December), day(2024, time.December, 1), DateSelection{})
	assert.Equal(t, MonthRef{Year: 2025, Month: time.January}, view.Next)

	view = BuildMonth(domain.EmptyMonth(2025, time.January), day(2024, time.December, 1), DateSelection{})
	assert.Equal(t, MonthRef{Year: 2024, Month: time.December}, view.Prev)
}

func TestStyleFor(t *testing.T) {
	for _, status := range domain.DayStatuses {
		style := StyleFor(status)
		assert.NotEmpty(t, style, "status %s", status)
		assert.Equal(t, status == domain.DayAvailable, style == StyleAvailable, "status %s", status)
	}
	assert.Equal(t, StyleUnavailable, StyleFor("holiday"))
}

func workdaySlots() []domain.TimeSlot {
	return []domain.TimeSlot{
		{ID: ptr.Ptr(int64(1)), StartTime: "09:00", EndTime: "10:00", Status: domain.SlotAvailable},
		{ID: ptr.Ptr(int64(2)), StartTime: "10:30", EndTime: "12:30", Status: domain.SlotAvailable},
		{ID: ptr.Ptr(int64(3)), StartTime: "13:00", EndTime: "14:00", Status: domain.SlotUnavailable},
	}
}

func TestResolveHourClick(t *testing.T) {
	slots := workdaySlots()

	slot, ok := ResolveHourClick(slots, 9)
	require.True(t, ok)
	require.NotNil(t, slot.ID)
	assert.Equal(t, int64(1), *slot.ID)

	slot, ok = ResolveHourClick(slots, 11)
	require.True(t, ok)
	assert.True(t, slot.IsVirtual())
	assert.Equal(t, "11:00", slot.StartTime.String())
	assert.Equal(t, "12:00", slot.EndTime.String())

	slot, ok = ResolveHourClick(slots, 12)
	require.True(t, ok)
	assert.Equal(t, "12:30", slot.EndTime.String())

	_, ok = ResolveHourClick(slots, 10)
	assert.False(t, ok)
	_, ok = ResolveHourClick(slots, 13)
	assert.False(t, ok)
	_, ok = ResolveHourClick(slots, 24)
	assert.False(t, ok)
}

func weekOf(start time.Time, slots []domain.TimeSlot) []domain.DaySlots {
	days := make([]domain.DaySlots, 0, domain.DaysPerWeek)
	for i := 0; i < domain.DaysPerWeek; i++ {
		d := domain.DaySlots{Date: start.AddDate(0, 0, i)}
		if i == 0 {
			d.Slots = slots
		}
		days = append(days, d)
	}
	return days
}

func TestBuildWeek(t *testing.T) {
	days := weekOf(day(2024, time.June, 3), workdaySlots())
	days[2].Degraded = true

	view := BuildWeek(days, GridOptions{
		Labels:   Labeler{Format: TimeFormat12h},
		Today:    day(2024, time.June, 4),
		Selected: &SlotSelection{Date: day(2024, time.June, 3), Start: "11:00"},
	})

	assert.Equal(t, "Jun 3 - 9, 2024", view.Header)
	require.Len(t, view.Hours, 24)
	assert.Equal(t, "9:00am", view.Hours[9].Label)
	assert.Equal(t, "12:00am", view.Hours[0].Label)

	require.Len(t, view.Days, 7)
	monday := view.Days[0]
	assert.Equal(t, "MON", monday.DayName)
	assert.Equal(t, "JUN", monday.Month)

	available := map[int]bool{}
	for _, cell := range monday.Cells {
		available[cell.Hour] = cell.Available
	}
	assert.True(t, available[9])
	assert.False(t, available[10])
	assert.True(t, available[11])
	assert.True(t, available[12])
	assert.False(t, available[13])

	assert.True(t, monday.Cells[11].Selected)
	assert.False(t, monday.Cells[9].Selected)
	assert.True(t, view.Days[1].Today)
	assert.True(t, view.Days[2].Degraded)
}

func TestBuildWeek_HourWindow(t *testing.T) {
	view := BuildWeek(weekOf(day(2024, time.June, 3), nil), GridOptions{
		Labels:    Labeler{Format: TimeFormat24h},
		StartHour: 8,
		EndHour:   18,
	})

	require.Len(t, view.Hours, 11)
	assert.Equal(t, "08:00", view.Hours[0].Label)
	assert.Len(t, view.Days[0].Cells, 11)
}

func TestBuildColumns_OnlyAvailable(t *testing.T) {
	days := weekOf(day(2024, time.June, 3), workdaySlots())[:3]

	view := BuildColumns(days, GridOptions{
		Labels:   Labeler{Format: TimeFormat12h},
		Selected: &SlotSelection{Date: day(2024, time.June, 3), Start: "10:30"},
	})

	assert.Equal(t, "Jun 3 - 5, 2024", view.Header)
	require.Len(t, view.Columns, 3)
	require.Len(t, view.Columns[0].Slots, 2)
	assert.Equal(t, "9:00am", view.Columns[0].Slots[0].Label)
	assert.Equal(t, "10:30am - 12:30pm", view.Columns[0].Slots[1].Range)
	assert.True(t, view.Columns[0].Slots[1].Selected)
	assert.Empty(t, view.Columns[1].Slots)
}

func TestBuildSlotList(t *testing.T) {
	slots := workdaySlots()
	view := BuildSlotList(domain.DaySlots{Date: day(2024, time.June, 3), Slots: slots}, Labeler{Format: TimeFormat24h}, &slots[0])

	assert.Equal(t, "Mon, Jun 3", view.Title)
	require.Len(t, view.Slots, 2)
	assert.Equal(t, "09:00", view.Slots[0].Label)
	assert.True(t, view.Slots[0].Selected)
	assert.False(t, view.Slots[1].Selected)
}

func TestHeaderRange(t *testing.T) {
	assert.Equal(t, "Jun 3 - 9, 2024", HeaderRange(day(2024, time.June, 3), day(2024, time.June, 9)))
	assert.Equal(t, "May 30 - Jun 5, 2024", HeaderRange(day(2024, time.May, 30), day(2024, time.June, 5)))
	assert.Equal(t, "Dec 30, 2024 - Jan 5, 2025", HeaderRange(day(2024, time.December, 30), day(2025, time.January, 5)))
}

func TestSummary(t *testing.T) {
	start, end := day(2024, time.June, 3), day(2024, time.June, 5)

	assert.Equal(t, "Monday, June 3, 2024 at 09:00 - 10:00", Summary(domain.BookingRequest{
		Mode: domain.BookingModeTimeSlots,
		Date: start,
		Slot: &domain.TimeSlot{StartTime: "09:00", EndTime: "10:00"},
	}))
	assert.Equal(t, "Monday, June 3, 2024 - Wednesday, June 5, 2024", Summary(domain.BookingRequest{
		Mode: domain.BookingModeFullDay, Date: start, EndDate: &end,
	}))
	assert.Equal(t, "Monday, June 3, 2024", Summary(domain.BookingRequest{
		Mode: domain.BookingModeFullDay, Date: start, EndDate: &start,
	}))
}

func TestParseTimeFormat(t *testing.T) {
	f, err := ParseTimeFormat("")
	require.NoError(t, err)
	assert.Equal(t, TimeFormat24h, f)

	f, err = ParseTimeFormat("12H")
	require.NoError(t, err)
	assert.Equal(t, TimeFormat12h, f)

	_, err = ParseTimeFormat("36h")
	assert.ErrorIs(t, err, ErrUnknownTimeFormat)
}

func TestLabeler_DisplayTimezone(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	labels := Labeler{Format: TimeFormat24h, Owner: rome, Display: time.UTC}
	assert.Equal(t, "07:00", labels.Label(day(2024, time.June, 3), "09:00"))

	same := Labeler{Format: TimeFormat12h, Owner: rome, Display: rome}
	assert.Equal(t, "9:00am", same.Label(day(2024, time.June, 3), "09:00"))
}
