package sessions

import (
	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// render строит представление сессии для текущего представления календаря
// Вызывается под sess.mu
func (s *Service) render(sess *session) *models.SessionResponse {
	state := sess.state
	owner := sess.calendar.Location()

	timezone := owner.String()
	if sess.display != nil {
		timezone = sess.display.String()
	}

	resp := &models.SessionResponse{
		ID:         sess.id,
		Calendar:   views.BuildCalendar(sess.calendar),
		State:      state.Snapshot(),
		TimeFormat: sess.timeFormat,
		Timezone:   timezone,
		Submission: sess.submission,
	}

	labels := views.Labeler{Format: sess.timeFormat, Owner: owner, Display: sess.display}
	today := s.today(sess.calendar)

	switch state.Layout {
	case booker.LayoutWeek, booker.LayoutColumn:
		opts := views.GridOptions{
			Labels:   labels,
			Today:    today,
			Selected: slotSelection(state),
		}
		if state.Layout == booker.LayoutWeek {
			week := views.BuildWeek(sess.week, opts)
			resp.Week = &week
		} else {
			columns := views.BuildColumns(sess.week, opts)
			resp.Columns = &columns
		}

	default:
		month := views.BuildMonth(sess.month, today, dateSelection(state))
		month.Degraded = sess.monthDegraded
		resp.Month = &month

		date := state.SelectedDate()
		if state.Mode.IsTimeSlots() && date != nil && sess.day != nil && sameDate(sess.day.Date, *date) {
			selected := state.CurrentBooking()
			if confirmed, ok := state.Step.(booker.Confirmed); ok {
				selected = &confirmed.Booking
			}
			slots := views.BuildSlotList(*sess.day, labels, bookingSlot(selected))
			resp.Slots = &slots
		}
	}

	return resp
}

func dateSelection(state booker.State) views.DateSelection {
	selection := views.DateSelection{Start: state.SelectedDate()}
	if booking := state.CurrentBooking(); booking != nil {
		selection.End = booking.EndDate
	}
	if confirmed, ok := state.Step.(booker.Confirmed); ok {
		selection.End = confirmed.Booking.EndDate
	}
	return selection
}

func bookingSlot(b *booker.Booking) *domain.TimeSlot {
	if b == nil {
		return nil
	}
	return b.Slot
}
