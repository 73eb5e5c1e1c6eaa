package models

import (
	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// Типы действий над сессией
const (
	ActionSelectDate    = "select_date"
	ActionSelectSlot    = "select_slot"
	ActionSelectHour    = "select_hour"
	ActionCancel        = "cancel"
	ActionChangeLayout  = "change_layout"
	ActionNavigate      = "navigate"
	ActionToday         = "today"
	ActionSetTimeFormat = "set_time_format"
	ActionSetTimezone   = "set_timezone"
)

// CreateSessionRequest запрос на создание сессии
type CreateSessionRequest struct {
	Token      string `json:"token"`
	Layout     string `json:"layout,omitempty"`
	TimeFormat string `json:"timeFormat,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
}

// Action действие посетителя
type Action struct {
	Type       string `json:"type"`
	Date       string `json:"date,omitempty"`      // YYYY-MM-DD
	SlotID     *int64 `json:"slotId,omitempty"`    // select_slot
	StartTime  string `json:"startTime,omitempty"` // select_slot для слотов без ID
	Hour       *int   `json:"hour,omitempty"`      // select_hour
	Layout     string `json:"layout,omitempty"`
	Direction  string `json:"direction,omitempty"` // prev | next
	TimeFormat string `json:"timeFormat,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
}

// ContactRequest контакты посетителя для отправки бронирования
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message *string `json:"message,omitempty"`
}

// SessionResponse полное представление сессии
type SessionResponse struct {
	ID         string              `json:"id"`
	Calendar   views.CalendarView  `json:"calendar"`
	State      booker.Snapshot     `json:"state"`
	TimeFormat views.TimeFormat    `json:"timeFormat"`
	Timezone   string              `json:"timezone"`
	Month      *views.MonthView    `json:"month,omitempty"`
	Slots      *views.SlotListView `json:"slots,omitempty"`
	Week       *views.WeekView     `json:"week,omitempty"`
	Columns    *views.ColumnView   `json:"columns,omitempty"`
	Submission *SubmissionResponse `json:"submission,omitempty"`
}

// SubmissionResponse результат отправки бронирования
type SubmissionResponse struct {
	Summary   string `json:"summary"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
}
