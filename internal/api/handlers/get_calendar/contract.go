package get_calendar

import (
	"context"
	"time"

	loadCalendar "github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
)

type LoadCalendarUseCase interface {
	Execute(ctx context.Context, req *loadCalendar.Request) (*loadCalendar.Response, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
