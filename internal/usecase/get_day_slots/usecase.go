package get_day_slots

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
)

// UseCase use case получения временных слотов дня
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

// Execute получает слоты дня
// При недоступности API возвращает пустой список с Degraded = true
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetDaySlots: token=%s, date=%s", req.Token, date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слоты с graceful degradation
	slots, err := uc.client.GetDayWithGracefulDegradation(ctx, req.Token, req.Date)
	if err != nil {
		if errors.Is(err, publiccalendar.ErrCalendarNotFound) {
			uc.logger.Warn("GetDaySlots: calendar token=%s not found", req.Token)
			return nil, ErrCalendarNotFound
		}

		// Любая другая ошибка трактуется как деградация: день показывается пустым
		uc.logger.Warn("GetDaySlots: degraded date=%s: %v", date, err)
		if uc.metrics != nil {
			uc.metrics.IncDegradedFetch("day")
		}
		return &Response{
			Day: domain.DaySlots{Date: req.Date, Slots: []domain.TimeSlot{}, Degraded: true},
		}, nil
	}

	uc.logger.Info("GetDaySlots: loaded %d slots for date=%s", len(slots), date)

	return &Response{
		Day: domain.DaySlots{Date: req.Date, Slots: slots},
	}, nil
}
