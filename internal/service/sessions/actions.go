package sessions

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// toEvent переводит действие посетителя в событие букера
// nil без ошибки означает действие без изменения шага (настройки отображения, клик по пустому часу)
// Вызывается под sess.mu
func (s *Service) toEvent(sess *session, action *models.Action) (booker.Event, error) {
	switch action.Type {
	case models.ActionSelectDate:
		date, err := parseDate(action.Date)
		if err != nil {
			return nil, err
		}
		if err := checkSelectable(sess, date); err != nil {
			return nil, err
		}
		return booker.SelectDate{Date: date}, nil

	case models.ActionSelectSlot:
		return s.slotEvent(sess, action)

	case models.ActionSelectHour:
		return s.hourEvent(sess, action)

	case models.ActionCancel:
		return booker.Cancel{}, nil

	case models.ActionChangeLayout:
		layout, err := booker.ParseLayout(action.Layout)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		return booker.ChangeLayout{Layout: layout}, nil

	case models.ActionNavigate:
		switch strings.ToLower(action.Direction) {
		case "prev":
			return booker.Navigate{Direction: booker.Prev}, nil
		case "next":
			return booker.Navigate{Direction: booker.Next}, nil
		default:
			return nil, fmt.Errorf("%w: direction must be prev or next", ErrInvalidAction)
		}

	case models.ActionToday:
		return booker.Today{Date: s.today(sess.calendar)}, nil

	case models.ActionSetTimeFormat:
		format, err := views.ParseTimeFormat(action.TimeFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		sess.timeFormat = format
		return nil, nil

	case models.ActionSetTimezone:
		display, err := parseTimezone(action.Timezone)
		if err != nil {
			return nil, err
		}
		sess.display = display
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: unknown action type %q", ErrInvalidAction, action.Type)
	}
}

// slotEvent ищет выбранный слот среди загруженных доступных слотов
func (s *Service) slotEvent(sess *session, action *models.Action) (booker.Event, error) {
	if !sess.state.Mode.IsTimeSlots() {
		return nil, fmt.Errorf("%w: calendar books whole days", ErrInvalidAction)
	}
	if action.SlotID == nil && action.StartTime == "" {
		return nil, fmt.Errorf("%w: slotId or startTime is required", ErrInvalidAction)
	}

	day, err := s.loadedDay(sess, action.Date)
	if err != nil {
		return nil, err
	}

	for _, slot := range day.Slots {
		if !slot.IsAvailable() {
			continue
		}
		if action.SlotID != nil {
			if slot.ID != nil && *slot.ID == *action.SlotID {
				return booker.SelectSlot{Date: day.Date, Slot: slot}, nil
			}
			continue
		}
		if slot.StartTime.String() == action.StartTime {
			return booker.SelectSlot{Date: day.Date, Slot: slot}, nil
		}
	}

	return nil, ErrSlotNotFound
}

// hourEvent обрабатывает клик по часу недельной сетки
func (s *Service) hourEvent(sess *session, action *models.Action) (booker.Event, error) {
	if sess.state.Layout != booker.LayoutWeek {
		return nil, fmt.Errorf("%w: hour selection is available only in week layout", ErrInvalidAction)
	}
	if !sess.state.Mode.IsTimeSlots() {
		return nil, fmt.Errorf("%w: calendar books whole days", ErrInvalidAction)
	}
	if action.Hour == nil || *action.Hour < 0 || *action.Hour >= domain.HoursPerDay {
		return nil, fmt.Errorf("%w: hour must be between 0 and 23", ErrInvalidAction)
	}

	day, err := s.loadedDay(sess, action.Date)
	if err != nil {
		return nil, err
	}

	slot, ok := views.ResolveHourClick(day.Slots, *action.Hour)
	if !ok {
		s.logger.Info("ApplyAction: session=%s hour %d on %s has no available slot, ignored",
			sess.id, *action.Hour, day.Date.Format(domain.DateFormat))
		return nil, nil
	}
	return booker.SelectSlot{Date: day.Date, Slot: slot}, nil
}

// loadedDay возвращает загруженные слоты дня
// В месячном представлении это слоты выбранной даты, в сетках - день окна
func (s *Service) loadedDay(sess *session, rawDate string) (domain.DaySlots, error) {
	if sess.state.Layout.IsGrid() {
		date, err := parseDate(rawDate)
		if err != nil {
			return domain.DaySlots{}, err
		}
		for _, day := range sess.week {
			if sameDate(day.Date, date) {
				return day, nil
			}
		}
		return domain.DaySlots{}, fmt.Errorf("%w: date %s is outside of the current window", ErrSlotNotFound, rawDate)
	}

	selected := sess.state.SelectedDate()
	if selected == nil || sess.day == nil || !sameDate(sess.day.Date, *selected) {
		return domain.DaySlots{}, fmt.Errorf("%w: select a date first", ErrInvalidAction)
	}
	if rawDate != "" {
		date, err := parseDate(rawDate)
		if err != nil {
			return domain.DaySlots{}, err
		}
		if !sameDate(date, *selected) {
			return domain.DaySlots{}, fmt.Errorf("%w: slot date differs from the selected date", ErrInvalidAction)
		}
	}
	return *sess.day, nil
}

// checkSelectable проверяет статус даты по загруженному месяцу
// Дата вне загруженного месяца не выбирается
func checkSelectable(sess *session, date time.Time) error {
	day, ok := sess.month.Day(date)
	if !ok {
		return fmt.Errorf("%w: %s is outside of the loaded month", ErrDateNotSelectable, date.Format(domain.DateFormat))
	}
	if !day.Status.IsSelectable() {
		return fmt.Errorf("%w: %s is %s", ErrDateNotSelectable, day.Key(), day.Status)
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidAction)
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidAction)
	}
	return date, nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// slotSelection выбранный в модальном окне слот для подсветки в сетке
func slotSelection(state booker.State) *views.SlotSelection {
	booking := state.CurrentBooking()
	if booking == nil || booking.Slot == nil {
		return nil
	}
	return &views.SlotSelection{Date: booking.Date, Start: booking.Slot.StartTime}
}
