package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
)

// PublicCalendarClient интерфейс клиента публичного календаря
type PublicCalendarClient interface {
	SubmitBooking(ctx context.Context, token string, payload publiccalendar.BookingPayload) (*publiccalendar.SubmitResult, error)
}

// Metrics учет отправленных бронирований
type Metrics interface {
	IncSubmittedBooking(mode, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
