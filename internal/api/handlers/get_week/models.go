package get_week

import (
	"time"

	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	getWeekSlots "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// GridResponse HTTP response model: заполнено одно из week или columns
type GridResponse struct {
	Layout       booker.Layout     `json:"layout"`
	Week         *views.WeekView   `json:"week,omitempty"`
	Columns      *views.ColumnView `json:"columns,omitempty"`
	DegradedDays int               `json:"degradedDays"`
}

// ParseStart разбирает первый день окна, пустая строка означает today
func ParseStart(raw string, today time.Time) (time.Time, error) {
	if raw == "" {
		return today, nil
	}
	return time.Parse(domain.DateFormat, raw)
}

// FromUseCaseResponse строит сетку под представление
func FromUseCaseResponse(resp *getWeekSlots.Response, layout booker.Layout, opts views.GridOptions) *GridResponse {
	result := &GridResponse{Layout: layout, DegradedDays: resp.DegradedDays()}
	if layout == booker.LayoutColumn {
		columns := views.BuildColumns(resp.Days, opts)
		result.Columns = &columns
		return result
	}
	week := views.BuildWeek(resp.Days, opts)
	result.Week = &week
	return result
}
