package get_month

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// PublicCalendarClient интерфейс клиента публичного календаря
type PublicCalendarClient interface {
	GetMonth(ctx context.Context, token string, year int, month time.Month) (*domain.MonthAvailability, error)
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
