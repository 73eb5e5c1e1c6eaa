package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	getDaySlots "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// ToUseCaseRequest создает запрос use case из параметров пути
func ToUseCaseRequest(token, dateStr string) (*getDaySlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getDaySlots.Request{Token: token, Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в список слотов
func FromUseCaseResponse(resp *getDaySlots.Response, format views.TimeFormat) views.SlotListView {
	return views.BuildSlotList(resp.Day, views.Labeler{Format: format}, nil)
}
