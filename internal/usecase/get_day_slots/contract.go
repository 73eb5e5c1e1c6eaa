package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// PublicCalendarClient интерфейс клиента публичного календаря
type PublicCalendarClient interface {
	GetDayWithGracefulDegradation(ctx context.Context, token string, date time.Time) ([]domain.TimeSlot, error)
}

// Metrics учет деградировавших загрузок
type Metrics interface {
	IncDegradedFetch(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
