package get_calendar

import (
	"time"

	loadCalendar "github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Calendar views.CalendarView `json:"calendar"`
	Month    views.MonthView    `json:"month"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// now переводится в часовой пояс календаря, чтобы отметить текущий день владельца
func FromUseCaseResponse(resp *loadCalendar.Response, now time.Time) *CalendarResponse {
	local := now.In(resp.Calendar.Location())
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	month := views.BuildMonth(resp.Month, today, views.DateSelection{})
	month.Degraded = resp.Degraded

	return &CalendarResponse{
		Calendar: views.BuildCalendar(resp.Calendar),
		Month:    month,
	}
}
