package domain

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/pkg/types"
)

// SlotStatus статус временного слота
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotUnavailable SlotStatus = "unavailable"
)

// TimeSlot временной слот дня
// ID отсутствует у виртуальных слотов, построенных из клика по часу в недельной сетке
type TimeSlot struct {
	ID        *int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
}

// IsAvailable возвращает true, если слот можно бронировать
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsVirtual возвращает true для слотов без серверного ID
func (s *TimeSlot) IsVirtual() bool {
	return s.ID == nil
}

// Covers проверяет start_time <= t < end_time
func (s *TimeSlot) Covers(t types.TimeString) bool {
	return !t.IsBefore(s.StartTime) && t.IsBefore(s.EndTime)
}

// SameAs сравнивает слоты: по ID, если он есть у обоих, иначе по времени
func (s *TimeSlot) SameAs(other *TimeSlot) bool {
	if s == nil || other == nil {
		return false
	}
	if s.ID != nil && other.ID != nil {
		return *s.ID == *other.ID
	}
	return s.StartTime == other.StartTime && s.EndTime == other.EndTime
}

// AvailableSlots возвращает только доступные слоты, сохраняя порядок
func AvailableSlots(slots []TimeSlot) []TimeSlot {
	result := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAvailable() {
			result = append(result, slot)
		}
	}
	return result
}

// DaySlots слоты одного дня
// Degraded выставляется, когда слоты не удалось загрузить и день показан пустым
type DaySlots struct {
	Date     time.Time
	Slots    []TimeSlot
	Degraded bool
}
