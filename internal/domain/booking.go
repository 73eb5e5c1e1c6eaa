package domain

import (
	"time"
)

// Contact контактные данные посетителя
type Contact struct {
	Name    string  `validate:"required,max=255"`
	Email   string  `validate:"required,email,max=255"`
	Phone   *string `validate:"omitempty,max=50"`
	Message *string `validate:"omitempty,max=2000"`
}

// BookingRequest запрос на бронирование, собранный из текущего выбора
type BookingRequest struct {
	Mode    BookingMode
	Contact Contact
	Date    time.Time
	EndDate *time.Time // только full_day с диапазоном
	Slot    *TimeSlot  // только time_slots
}

// IsRange возвращает true для многодневного бронирования
func (r *BookingRequest) IsRange() bool {
	return r.EndDate != nil && !r.EndDate.Equal(r.Date)
}

// Confirmation результат успешной отправки бронирования
// Бронирование создается в статусе ожидания подтверждения владельцем
type Confirmation struct {
	Request BookingRequest
	Summary string
}
