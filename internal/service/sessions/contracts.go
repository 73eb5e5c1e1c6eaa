package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
)

// CalendarLoader use case загрузки календаря
type CalendarLoader interface {
	Execute(ctx context.Context, req *load_calendar.Request) (*load_calendar.Response, error)
}

// MonthFetcher use case загрузки месяца
type MonthFetcher interface {
	Execute(ctx context.Context, req *get_month.Request) (*get_month.Response, error)
}

// DayFetcher use case загрузки слотов дня
type DayFetcher interface {
	Execute(ctx context.Context, req *get_day_slots.Request) (*get_day_slots.Response, error)
}

// WeekFetcher use case загрузки слотов окна сетки
type WeekFetcher interface {
	Execute(ctx context.Context, req *get_week_slots.Request) (*get_week_slots.Response, error)
}

// BookingSubmitter use case отправки бронирования
type BookingSubmitter interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
}

// Metrics метрики сессий
type Metrics interface {
	SetActiveSessions(n int)
	IncStaleResponse(channel string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
