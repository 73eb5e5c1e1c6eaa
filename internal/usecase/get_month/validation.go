package get_month

import (
	"fmt"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := domain.ValidateToken(req.Token); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateYearMonth(req.Year, req.Month); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
