package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// Request модель запроса слотов дня
type Request struct {
	Token string
	Date  time.Time // Дата без времени
}

// Response модель ответа
type Response struct {
	Day domain.DaySlots
}
