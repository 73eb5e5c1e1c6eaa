package publiccalendar

import (
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// NewBookingPayload собирает тело запроса бронирования для режима календаря
func NewBookingPayload(req domain.BookingRequest) BookingPayload {
	payload := BookingPayload{
		Name:    req.Contact.Name,
		Email:   req.Contact.Email,
		Phone:   req.Contact.Phone,
		Message: req.Contact.Message,
	}

	switch req.Mode {
	case domain.BookingModeFullDay:
		payload.RequestedDate = req.Date.Format(domain.DateFormat)
		if req.IsRange() {
			payload.RequestedDateEnd = req.EndDate.Format(domain.DateFormat)
		}
	case domain.BookingModeTimeSlots:
		payload.Date = req.Date.Format(domain.DateFormat)
		if req.Slot != nil {
			payload.TimeSlotID = req.Slot.ID
			payload.StartTime = req.Slot.StartTime.String()
			payload.EndTime = req.Slot.EndTime.String()
		}
	}

	return payload
}
