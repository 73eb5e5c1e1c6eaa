package booker

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

// Direction направление навигации
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Event событие, изменяющее состояние букера
type Event interface {
	event()
}

// SelectDate клик по дате
type SelectDate struct {
	Date time.Time
}

// SelectSlot выбор слота
// В месячном представлении Date можно не указывать, используется выбранная дата
type SelectSlot struct {
	Date time.Time
	Slot domain.TimeSlot
}

// Cancel отмена текущего бронирования
type Cancel struct{}

// ChangeLayout смена представления
type ChangeLayout struct {
	Layout Layout
}

// Navigate переход к предыдущему или следующему окну (месяцу в month)
type Navigate struct {
	Direction Direction
}

// Today переход к текущей дате
type Today struct {
	Date time.Time
}

// Confirm фиксация успешной отправки бронирования
type Confirm struct {
	Summary string
}

func (SelectDate) event()   {}
func (SelectSlot) event()   {}
func (Cancel) event()       {}
func (ChangeLayout) event() {}
func (Navigate) event()     {}
func (Today) event()        {}
func (Confirm) event()      {}
