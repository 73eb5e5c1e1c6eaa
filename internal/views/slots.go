package views

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// SlotItem слот в списке
type SlotItem struct {
	ID        *int64 `json:"id,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
	Range     string `json:"range"`
	Selected  bool   `json:"selected,omitempty"`
}

// SlotListView список доступных слотов дня (месячный режим)
type SlotListView struct {
	Title    string     `json:"title"`
	Date     string     `json:"date"`
	Slots    []SlotItem `json:"slots"`
	Degraded bool       `json:"degraded,omitempty"`
}

// BuildSlotList строит список доступных слотов дня
func BuildSlotList(day domain.DaySlots, labels Labeler, selected *domain.TimeSlot) SlotListView {
	return SlotListView{
		Title:    ShortDate(day.Date),
		Date:     day.Date.Format(domain.DateFormat),
		Slots:    slotItems(day.Date, day.Slots, labels, selected),
		Degraded: day.Degraded,
	}
}

func slotItems(date time.Time, slots []domain.TimeSlot, labels Labeler, selected *domain.TimeSlot) []SlotItem {
	available := domain.AvailableSlots(slots)
	items := make([]SlotItem, 0, len(available))
	for i := range available {
		slot := available[i]
		items = append(items, SlotItem{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Label:     labels.Label(date, slot.StartTime),
			Range:     labels.Range(date, slot.StartTime, slot.EndTime),
			Selected:  slot.SameAs(selected),
		})
	}
	return items
}
