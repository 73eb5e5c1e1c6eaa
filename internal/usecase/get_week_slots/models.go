package get_week_slots

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// MaxDays максимальный размер окна сетки
const MaxDays = 31

// Request модель запроса слотов окна дней
type Request struct {
	Token string
	Start time.Time // Первый день окна
	Days  int       // Количество дней, 0 означает неделю
}

// Response модель ответа: дни в порядке дат
type Response struct {
	Days []domain.DaySlots
}

// DegradedDays возвращает количество дней, загруженных с деградацией
func (r *Response) DegradedDays() int {
	count := 0
	for _, day := range r.Days {
		if day.Degraded {
			count++
		}
	}
	return count
}
