package domain

import (
	"fmt"
	"time"
)

// DayStatus статус дня, вычисленный сервером
type DayStatus string

const (
	DayAvailable   DayStatus = "available"
	DayBooked      DayStatus = "booked"
	DayFullyBooked DayStatus = "fully_booked"
	DayPast        DayStatus = "past"
	DayBlocked     DayStatus = "blocked"
	DayClosed      DayStatus = "closed"
	DayTooSoon     DayStatus = "too_soon"
	DayTooFar      DayStatus = "too_far"
	DayUnavailable DayStatus = "unavailable"
)

// DayStatuses список всех известных статусов дня
var DayStatuses = []DayStatus{
	DayAvailable,
	DayBooked,
	DayFullyBooked,
	DayPast,
	DayBlocked,
	DayClosed,
	DayTooSoon,
	DayTooFar,
	DayUnavailable,
}

// IsKnown возвращает true, если статус входит в словарь сервера
func (s DayStatus) IsKnown() bool {
	for _, known := range DayStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsSelectable день можно выбрать только в статусе available
// Неизвестные статусы считаются недоступными
func (s DayStatus) IsSelectable() bool {
	return s == DayAvailable
}

// DayAvailability доступность одного дня
type DayAvailability struct {
	Date      time.Time
	Status    DayStatus
	SlotCount *int
}

// Key возвращает ISO дату дня
func (d DayAvailability) Key() string {
	return d.Date.Format(DateFormat)
}

// MonthAvailability доступность дней месяца
type MonthAvailability struct {
	Year  int
	Month time.Month
	Days  []DayAvailability
}

// ValidateYearMonth проверяет пару (год, месяц)
func ValidateYearMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be in 1..12, got %d", month)
	}
	if year < 1970 || year > 9999 {
		return fmt.Errorf("year out of range: %d", year)
	}
	return nil
}

// FirstDay возвращает первый день месяца (UTC)
func (m MonthAvailability) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth возвращает количество дней в месяце
func (m MonthAvailability) DaysInMonth() int {
	return m.FirstDay().AddDate(0, 1, -1).Day()
}

// Normalize возвращает месяц, в котором ровно одна запись на каждый день:
// дубликаты по дате отбрасываются (побеждает первый), чужие дни удаляются,
// отсутствующие дни заполняются статусом blocked
func (m MonthAvailability) Normalize() MonthAvailability {
	byKey := make(map[string]DayAvailability, len(m.Days))
	for _, day := range m.Days {
		if day.Date.Year() != m.Year || day.Date.Month() != m.Month {
			continue
		}
		if _, exists := byKey[day.Key()]; exists {
			continue
		}
		byKey[day.Key()] = day
	}

	first := m.FirstDay()
	total := m.DaysInMonth()
	days := make([]DayAvailability, 0, total)
	for i := 0; i < total; i++ {
		date := first.AddDate(0, 0, i)
		if day, ok := byKey[date.Format(DateFormat)]; ok {
			day.Date = date
			days = append(days, day)
			continue
		}
		days = append(days, DayAvailability{Date: date, Status: DayBlocked})
	}

	return MonthAvailability{Year: m.Year, Month: m.Month, Days: days}
}

// Day ищет день по дате
func (m MonthAvailability) Day(date time.Time) (DayAvailability, bool) {
	key := date.Format(DateFormat)
	for _, day := range m.Days {
		if day.Key() == key {
			return day, true
		}
	}
	return DayAvailability{}, false
}

// Contains возвращает true, если дата относится к этому месяцу
func (m MonthAvailability) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}

// EmptyMonth месяц без данных: все дни blocked
func EmptyMonth(year int, month time.Month) MonthAvailability {
	return MonthAvailability{Year: year, Month: month}.Normalize()
}
