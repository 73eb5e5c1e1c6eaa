package get_week_slots

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
)

// UseCase use case получения слотов для недельной и колоночной сеток
type UseCase struct {
	client  PublicCalendarClient
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PublicCalendarClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute параллельно загружает слоты каждого дня окна
// Ошибка одного дня не отменяет загрузку остальных: такой день возвращается пустым с Degraded = true
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekSlots: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultWeekDays
	}
	start := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, time.UTC)

	uc.logger.Info("GetWeekSlots: token=%s, start=%s, days=%d", req.Token, start.Format(domain.DateFormat), days)

	// 2. Загружаем дни параллельно, каждый пишет только в свою ячейку
	result := make([]domain.DaySlots, days)

	// Группа без общего контекста: ошибка одного дня не отменяет остальные
	var g errgroup.Group
	g.SetLimit(days)

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		idx := i
		g.Go(func() error {
			slots, err := uc.client.GetDayWithGracefulDegradation(ctx, req.Token, date)
			if err != nil {
				result[idx] = domain.DaySlots{Date: date, Slots: []domain.TimeSlot{}, Degraded: true}
				if errors.Is(err, publiccalendar.ErrCalendarNotFound) {
					return err
				}
				uc.logger.Warn("GetWeekSlots: degraded date=%s: %v", date.Format(domain.DateFormat), err)
				if uc.metrics != nil {
					uc.metrics.IncDegradedFetch("week")
				}
				return nil
			}
			result[idx] = domain.DaySlots{Date: date, Slots: slots}
			return nil
		})
	}

	// 3. Отсутствие календаря - терминальная ошибка для всего окна
	if err := g.Wait(); err != nil {
		uc.logger.Warn("GetWeekSlots: calendar token=%s not found", req.Token)
		return nil, ErrCalendarNotFound
	}

	resp := &Response{Days: result}
	uc.logger.Info("GetWeekSlots: loaded %d days, degraded=%d", len(resp.Days), resp.DegradedDays())

	return resp, nil
}
