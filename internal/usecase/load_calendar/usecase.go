package load_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// UseCase use case загрузки публичного календаря
type UseCase struct {
	client       PublicCalendarClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PublicCalendarClient, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute загружает календарь и доступность текущего месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LoadCalendar: token=%s", req.Token)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("LoadCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем календарь
	calendar, month, err := uc.client.GetCalendar(ctx, req.Token)
	if err != nil {
		if errors.Is(err, publiccalendar.ErrCalendarNotFound) {
			uc.logger.Warn("LoadCalendar: calendar token=%s not found", req.Token)
			return nil, ErrCalendarNotFound
		}
		uc.logger.Error("LoadCalendar: failed to get calendar token=%s: %v", req.Token, err)
		return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	}

	// 3. Без текущего месяца показываем его полностью недоступным
	if month == nil {
		now := uc.timeProvider.Now().In(calendar.Location())
		uc.logger.Warn("LoadCalendar: calendar id=%d returned no current month, showing %d-%02d as unavailable",
			calendar.ID, now.Year(), int(now.Month()))
		return &Response{
			Calendar: calendar,
			Month:    domain.EmptyMonth(now.Year(), now.Month()),
			Degraded: true,
		}, nil
	}

	uc.logger.Info("LoadCalendar: calendar id=%d, mode=%s, month=%d-%02d",
		calendar.ID, calendar.BookingMode, month.Year, int(month.Month))

	return &Response{
		Calendar: calendar,
		Month:    month.Normalize(),
	}, nil
}
