package get_week

import (
	"context"
	"time"

	getWeekSlots "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
)

type GetWeekSlotsUseCase interface {
	Execute(ctx context.Context, req *getWeekSlots.Request) (*getWeekSlots.Response, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
