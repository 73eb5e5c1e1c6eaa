package submit_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

var validate = validator.New()

// normalizeContact убирает пробелы, пустые необязательные поля превращаются в nil
func normalizeContact(c domain.Contact) domain.Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = trimOptional(c.Phone)
	c.Message = trimOptional(c.Message)
	return c
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validateContact валидирует контактные данные посетителя
func validateContact(c domain.Contact) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fe := validationErrors[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	case "email":
		return fmt.Errorf("%w: email must be a valid email address", ErrInvalidInput)
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", ErrInvalidInput, field, fe.Param())
	default:
		return fmt.Errorf("%w: %s is invalid", ErrInvalidInput, field)
	}
}

// validateSelection проверяет, что выбор соответствует режиму календаря
func validateSelection(req *domain.BookingRequest) error {
	if err := req.Mode.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrIncompleteSelection)
	}

	switch req.Mode {
	case domain.BookingModeFullDay:
		if req.Slot != nil {
			return fmt.Errorf("%w: full day booking cannot have a time slot", ErrIncompleteSelection)
		}
		if req.EndDate != nil && req.EndDate.Before(req.Date) {
			return fmt.Errorf("%w: end date is before start date", ErrIncompleteSelection)
		}
	case domain.BookingModeTimeSlots:
		if req.Slot == nil {
			return fmt.Errorf("%w: time slot is required", ErrIncompleteSelection)
		}
		if req.EndDate != nil {
			return fmt.Errorf("%w: time slot booking cannot span several days", ErrIncompleteSelection)
		}
		if err := req.Slot.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
		}
		if err := req.Slot.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
		}
		if !req.Slot.StartTime.IsBefore(req.Slot.EndTime) {
			return fmt.Errorf("%w: slot end must be after start", ErrIncompleteSelection)
		}
	}

	return nil
}
