package views

import "github.com/m04kA/SMC-PublicBooker/internal/domain"

// OwnerView владелец календаря
type OwnerView struct {
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar,omitempty"`
	Location *string `json:"location,omitempty"`
}

// CalendarView шапка букера: календарь и его владелец
type CalendarView struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name"`
	Description         *string    `json:"description,omitempty"`
	Owner               *OwnerView `json:"owner,omitempty"`
	BookingMode         string     `json:"bookingMode"`
	SlotDurationMinutes *int       `json:"slotDurationMinutes,omitempty"`
	Timezone            string     `json:"timezone"`
	AllowRangeSelection bool       `json:"allowRangeSelection"`
}

// BuildCalendar строит шапку букера
func BuildCalendar(info *domain.CalendarInfo) CalendarView {
	view := CalendarView{
		ID:                  info.ID,
		Name:                info.Name,
		Description:         info.Description,
		BookingMode:         string(info.BookingMode),
		SlotDurationMinutes: info.SlotDurationMinutes,
		Timezone:            info.Location().String(),
		AllowRangeSelection: info.RangeSelectionEnabled(),
	}
	if info.Owner != nil {
		view.Owner = &OwnerView{
			Name:     info.Owner.Name,
			Avatar:   info.Owner.Avatar,
			Location: info.Owner.Location,
		}
	}
	return view
}
