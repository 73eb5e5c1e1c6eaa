package publiccalendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

func toCalendarInfo(dto Calendar) (*domain.CalendarInfo, error) {
	// Календарь без режима бронирования еще не настроен владельцем и недоступен посетителям
	if dto.BookingMode == nil {
		return nil, fmt.Errorf("%w: calendar %d has no booking mode", ErrCalendarNotFound, dto.ID)
	}

	mode := domain.BookingMode(*dto.BookingMode)
	if err := mode.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	info := &domain.CalendarInfo{
		ID:                  dto.ID,
		Name:                dto.Name,
		Description:         dto.Description,
		BookingMode:         mode,
		SlotDurationMinutes: dto.SlotDurationMinutes,
		Timezone:            dto.Timezone,
		AllowRangeSelection: dto.AllowRangeSelection,
	}
	if dto.Owner != nil {
		info.Owner = &domain.Owner{
			Name:     dto.Owner.Name,
			Avatar:   dto.Owner.Avatar,
			Location: dto.Owner.Location,
		}
	}

	return info, nil
}

func (c *Client) toMonth(dto Month) (*domain.MonthAvailability, error) {
	if err := domain.ValidateYearMonth(dto.Year, dto.Month); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	month := domain.MonthAvailability{
		Year:  dto.Year,
		Month: time.Month(dto.Month),
		Days:  make([]domain.DayAvailability, 0, len(dto.Days)),
	}

	for _, day := range dto.Days {
		date, err := time.Parse(domain.DateFormat, day.Date)
		if err != nil {
			c.log.Warn("GetMonth: skipping day with invalid date=%q", day.Date)
			continue
		}
		month.Days = append(month.Days, domain.DayAvailability{
			Date:      date,
			Status:    domain.DayStatus(day.Status),
			SlotCount: day.SlotCount,
		})
	}

	normalized := month.Normalize()
	return &normalized, nil
}

func toTimeSlots(dtos []TimeSlot) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(dtos))
	for _, dto := range dtos {
		status := domain.SlotStatus(dto.Status)
		// Неизвестный статус слота считается недоступным
		if status != domain.SlotAvailable {
			status = domain.SlotUnavailable
		}
		slots = append(slots, domain.TimeSlot{
			ID:        dto.ID,
			StartTime: dto.StartTime,
			EndTime:   dto.EndTime,
			Status:    status,
		})
	}
	return slots
}
