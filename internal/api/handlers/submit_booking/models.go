package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	submitBooking "github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-PublicBooker/pkg/types"
)

// SubmitBookingRequest HTTP request model
// Режим определяется по наличию startTime: с ним это слот, без него - целые дни
type SubmitBookingRequest struct {
	Date      string  `json:"date"`              // YYYY-MM-DD
	EndDate   *string `json:"endDate,omitempty"` // full_day, последний день диапазона
	SlotID    *int64  `json:"slotId,omitempty"`
	StartTime string  `json:"startTime,omitempty"` // HH:MM
	EndTime   string  `json:"endTime,omitempty"`   // HH:MM
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Message   *string `json:"message,omitempty"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Summary   string `json:"summary"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *SubmitBookingRequest) ToUseCaseRequest(token string) (*submitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	booking := domain.BookingRequest{
		Mode: domain.BookingModeFullDay,
		Contact: domain.Contact{
			Name:    r.Name,
			Email:   r.Email,
			Phone:   r.Phone,
			Message: r.Message,
		},
		Date: date,
	}

	if r.StartTime != "" {
		start, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
		booking.Mode = domain.BookingModeTimeSlots
		booking.Slot = &domain.TimeSlot{
			ID:        r.SlotID,
			StartTime: start,
			EndTime:   end,
			Status:    domain.SlotAvailable,
		}
	}

	if r.EndDate != nil && *r.EndDate != "" {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		booking.EndDate = &endDate
	}

	return &submitBooking.Request{Token: token, Booking: booking}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Summary:   resp.Confirmation.Summary,
		BookingID: resp.BookingID,
		Message:   resp.Message,
	}
}
