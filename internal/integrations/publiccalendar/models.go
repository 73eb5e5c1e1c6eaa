package publiccalendar

import "github.com/m04kA/SMC-PublicBooker/pkg/types"

// CalendarEnvelope ответ GET /calendars/{token}
type CalendarEnvelope struct {
	Calendar     Calendar `json:"calendar"`
	CurrentMonth *Month   `json:"current_month"`
}

// MonthEnvelope ответ GET /calendars/{token}/months/{year}/{month}
type MonthEnvelope struct {
	Month Month `json:"month"`
}

// DayEnvelope ответ GET /calendars/{token}/days/{date}
type DayEnvelope struct {
	Slots []TimeSlot `json:"slots"`
}

// Calendar модель публичного календаря из API
type Calendar struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	Owner               *Owner  `json:"owner"`
	BookingMode         *string `json:"booking_mode"` // full_day, time_slots или null, если настройка не завершена
	SlotDurationMinutes *int    `json:"slot_duration_minutes"`
	Timezone            *string `json:"timezone"`
	AllowRangeSelection bool    `json:"allow_range_selection"`
}

// Owner публичные данные владельца календаря
type Owner struct {
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar"`
	Location *string `json:"location"`
}

// Month доступность дней месяца
type Month struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []Day `json:"days"`
}

// Day доступность дня
type Day struct {
	Date      string `json:"date"`   // YYYY-MM-DD
	Status    string `json:"status"` // available, booked, fully_booked, past, blocked, ...
	SlotCount *int   `json:"slot_count,omitempty"`
}

// TimeSlot временной слот
type TimeSlot struct {
	ID        *int64           `json:"id,omitempty"`
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Status    string           `json:"status"`
}

// BookingPayload тело POST /calendars/{token}/bookings
// Для full_day заполняются requested_date (+ requested_date_end для диапазона),
// для time_slots: date, start_time, end_time и time_slot_id (если слот не виртуальный)
type BookingPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message *string `json:"message,omitempty"`

	RequestedDate    string `json:"requested_date,omitempty"`
	RequestedDateEnd string `json:"requested_date_end,omitempty"`

	Date       string `json:"date,omitempty"`
	TimeSlotID *int64 `json:"time_slot_id,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
}

// SubmitResult ответ на успешную заявку
type SubmitResult struct {
	Message string `json:"message"`
	Booking *struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	} `json:"booking,omitempty"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
