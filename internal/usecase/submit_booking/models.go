package submit_booking

import "github.com/m04kA/SMC-PublicBooker/internal/domain"

// Request модель запроса на отправку бронирования
type Request struct {
	Token   string
	Booking domain.BookingRequest
}

// Response модель ответа
type Response struct {
	Confirmation domain.Confirmation
	BookingID    *int64 // ID созданной заявки, если сервер его вернул
	Message      string // Сообщение сервера
}

// Исходы отправки для метрик
const (
	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeRejected = "rejected"
	outcomeNotFound = "not_found"
	outcomeFailed   = "failed"
)
