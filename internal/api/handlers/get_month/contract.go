package get_month

import (
	"context"
	"time"

	getMonth "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
)

type GetMonthUseCase interface {
	Execute(ctx context.Context, req *getMonth.Request) (*getMonth.Response, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
