package get_month

import (
	"strconv"
	"time"

	getMonth "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// ToUseCaseRequest создает запрос use case из параметров пути
func ToUseCaseRequest(token, yearStr, monthStr string) (*getMonth.Request, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, err
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, err
	}
	return &getMonth.Request{Token: token, Year: year, Month: month}, nil
}

// FromUseCaseResponse конвертирует ответ use case в месячную сетку
func FromUseCaseResponse(resp *getMonth.Response, now time.Time) views.MonthView {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	view := views.BuildMonth(resp.Month, today, views.DateSelection{})
	view.Degraded = resp.Degraded
	return view
}
