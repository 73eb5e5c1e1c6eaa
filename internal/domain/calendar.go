package domain

import (
	"fmt"
	"time"
)

// BookingMode режим бронирования календаря
type BookingMode string

const (
	// BookingModeFullDay бронирование целых дней (в том числе диапазонов)
	BookingModeFullDay BookingMode = "full_day"
	// BookingModeTimeSlots бронирование отдельных временных слотов
	BookingModeTimeSlots BookingMode = "time_slots"
)

// Validate проверяет, что режим известен
func (m BookingMode) Validate() error {
	switch m {
	case BookingModeFullDay, BookingModeTimeSlots:
		return nil
	default:
		return fmt.Errorf("unknown booking mode %q", string(m))
	}
}

// IsTimeSlots возвращает true для режима временных слотов
func (m BookingMode) IsTimeSlots() bool {
	return m == BookingModeTimeSlots
}

// Owner публичная информация о владельце календаря
type Owner struct {
	Name     string
	Avatar   *string
	Location *string
}

// CalendarInfo публичный календарь, доступный по токену
// Неизменяем в рамках одной сессии бронирования
type CalendarInfo struct {
	ID                  int64
	Name                string
	Description         *string
	Owner               *Owner
	BookingMode         BookingMode
	SlotDurationMinutes *int
	Timezone            *string
	AllowRangeSelection bool
}

// Location возвращает часовой пояс владельца календаря (UTC, если не задан или неизвестен)
func (c *CalendarInfo) Location() *time.Location {
	if c.Timezone == nil || *c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(*c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RangeSelectionEnabled диапазоны дат допустимы только для full_day
func (c *CalendarInfo) RangeSelectionEnabled() bool {
	return c.BookingMode == BookingModeFullDay && c.AllowRangeSelection
}

// ValidateToken проверяет публичный токен календаря
func ValidateToken(token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}
	if len(token) > MaxTokenLength {
		return fmt.Errorf("token is too long")
	}
	for _, r := range token {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum && r != '-' && r != '_' {
			return fmt.Errorf("token contains invalid character %q", r)
		}
	}
	return nil
}
