package get_month

import "github.com/m04kA/SMC-PublicBooker/internal/domain"

// Request модель запроса доступности месяца
type Request struct {
	Token string
	Year  int
	Month int // 1..12
}

// Response модель ответа
// Degraded = true, если данные не удалось получить и месяц показан полностью недоступным
type Response struct {
	Month    domain.MonthAvailability
	Degraded bool
}
