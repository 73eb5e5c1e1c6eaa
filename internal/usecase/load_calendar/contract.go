package load_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// PublicCalendarClient интерфейс клиента публичного календаря
// nil вместо месяца означает, что сервер не вернул текущий месяц
type PublicCalendarClient interface {
	GetCalendar(ctx context.Context, token string) (*domain.CalendarInfo, *domain.MonthAvailability, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
