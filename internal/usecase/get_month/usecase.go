package get_month

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
)

// UseCase use case получения доступности дней месяца
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

// Execute получает доступность месяца
// При временной недоступности API возвращает пустой месяц (все дни blocked) с Degraded = true
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonth: token=%s, year=%d, month=%d", req.Token, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonth: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем доступность месяца
	month, err := uc.client.GetMonth(ctx, req.Token, req.Year, time.Month(req.Month))
	if err != nil {
		if errors.Is(err, publiccalendar.ErrCalendarNotFound) {
			uc.logger.Warn("GetMonth: calendar token=%s not found", req.Token)
			return nil, ErrCalendarNotFound
		}

		// 3. Graceful degradation: месяц без доступных дней
		uc.logger.Error("GetMonth: applying graceful degradation for %d-%02d: %v", req.Year, req.Month, err)
		if uc.metrics != nil {
			uc.metrics.IncDegradedFetch("month")
		}
		return &Response{
			Month:    domain.EmptyMonth(req.Year, time.Month(req.Month)),
			Degraded: true,
		}, nil
	}

	normalized := month.Normalize()
	uc.logger.Info("GetMonth: loaded %d days for %d-%02d", len(normalized.Days), req.Year, req.Month)

	return &Response{Month: normalized}, nil
}
