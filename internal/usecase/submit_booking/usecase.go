package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// UseCase use case отправки заявки на бронирование
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

// Execute валидирует выбор и контакты и отправляет заявку
// При некорректных данных запрос к API не выполняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	booking := req.Booking
	mode := string(booking.Mode)

	uc.logger.Info("SubmitBooking: token=%s, mode=%s, date=%s",
		req.Token, mode, booking.Date.Format(domain.DateFormat))

	// 1. Валидация токена и выбора
	if err := domain.ValidateToken(req.Token); err != nil {
		uc.record(mode, outcomeInvalid)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateSelection(&booking); err != nil {
		uc.logger.Warn("SubmitBooking: selection validation failed: %v", err)
		uc.record(mode, outcomeInvalid)
		return nil, err
	}

	// 2. Валидация контактов
	booking.Contact = normalizeContact(booking.Contact)
	if err := validateContact(booking.Contact); err != nil {
		uc.logger.Warn("SubmitBooking: contact validation failed: %v", err)
		uc.record(mode, outcomeInvalid)
		return nil, err
	}

	// 3. Собираем тело запроса под режим календаря
	payload := publiccalendar.NewBookingPayload(booking)
	if booking.Slot != nil && booking.Slot.IsVirtual() {
		uc.logger.Warn("SubmitBooking: submitting virtual slot %s-%s without time_slot_id",
			booking.Slot.StartTime, booking.Slot.EndTime)
	}

	// 4. Отправляем заявку
	result, err := uc.client.SubmitBooking(ctx, req.Token, payload)
	if err != nil {
		var rejected *publiccalendar.RejectedError
		switch {
		case errors.As(err, &rejected):
			uc.logger.Warn("SubmitBooking: rejected status=%d: %s", rejected.Status, rejected.Message)
			uc.record(mode, outcomeRejected)
			return nil, &RejectedError{Message: rejected.Message}
		case errors.Is(err, publiccalendar.ErrCalendarNotFound):
			uc.logger.Warn("SubmitBooking: calendar token=%s not found", req.Token)
			uc.record(mode, outcomeNotFound)
			return nil, ErrCalendarNotFound
		default:
			uc.logger.Error("SubmitBooking: failed to submit booking: %v", err)
			uc.record(mode, outcomeFailed)
			return nil, fmt.Errorf("%w: failed to submit booking: %v", ErrInternal, err)
		}
	}

	// 5. Формируем подтверждение
	resp := &Response{
		Confirmation: domain.Confirmation{
			Request: booking,
			Summary: views.Summary(booking),
		},
		Message: result.Message,
	}
	if result.Booking != nil {
		resp.BookingID = &result.Booking.ID
	}

	uc.record(mode, outcomeSuccess)
	uc.logger.Info("SubmitBooking: booking request sent, summary=%q", resp.Confirmation.Summary)

	return resp, nil
}

func (uc *UseCase) record(mode, outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncSubmittedBooking(mode, outcome)
	}
}
