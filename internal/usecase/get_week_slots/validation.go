package get_week_slots

import (
	"fmt"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := domain.ValidateToken(req.Token); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if req.Days < 0 || req.Days > MaxDays {
		return fmt.Errorf("%w: days must be in 1..%d", ErrInvalidInput, MaxDays)
	}
	return nil
}
