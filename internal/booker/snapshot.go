package booker

import (
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// SlotSnapshot слот в снимке состояния
type SlotSnapshot struct {
	ID        *int64 `json:"id,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Virtual   bool   `json:"virtual,omitempty"`
}

// BookingSnapshot бронирование в снимке состояния
type BookingSnapshot struct {
	Date       string        `json:"date"`
	EndDate    string        `json:"endDate,omitempty"`
	Slot       *SlotSnapshot `json:"slot,omitempty"`
	PendingEnd bool          `json:"pendingEnd,omitempty"`
}

// Snapshot плоское представление состояния для API и CLI
type Snapshot struct {
	Step         StepKind         `json:"step"`
	Layout       Layout           `json:"layout"`
	Mode         string           `json:"mode"`
	SelectedDate string           `json:"selectedDate,omitempty"`
	Year         int              `json:"year"`
	Month        int              `json:"month"`
	Anchor       string           `json:"anchor"`
	Booking      *BookingSnapshot `json:"booking,omitempty"`
	ModalOpen    bool             `json:"modalOpen"`
	Summary      string           `json:"summary,omitempty"`
}

// Snapshot возвращает снимок состояния
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Step:   s.Step.Kind(),
		Layout: s.Layout,
		Mode:   string(s.Mode),
		Year:   s.Month.Year,
		Month:  int(s.Month.Month),
		Anchor: s.Anchor.Format(domain.DateFormat),
	}

	if date := s.SelectedDate(); date != nil {
		snap.SelectedDate = date.Format(domain.DateFormat)
	}

	if confirmed, ok := s.Step.(Confirmed); ok {
		snap.Booking = bookingSnapshot(confirmed.Booking)
		snap.Summary = confirmed.Summary
		return snap
	}

	if booking := s.CurrentBooking(); booking != nil {
		snap.Booking = bookingSnapshot(*booking)
		snap.ModalOpen = s.Modal != nil
	}

	return snap
}

func bookingSnapshot(b Booking) *BookingSnapshot {
	snap := &BookingSnapshot{
		Date:       b.Date.Format(domain.DateFormat),
		PendingEnd: b.PendingEnd,
	}
	if b.EndDate != nil {
		snap.EndDate = b.EndDate.Format(domain.DateFormat)
	}
	if b.Slot != nil {
		snap.Slot = &SlotSnapshot{
			ID:        b.Slot.ID,
			StartTime: b.Slot.StartTime.String(),
			EndTime:   b.Slot.EndTime.String(),
			Virtual:   b.Slot.IsVirtual(),
		}
	}
	return snap
}
