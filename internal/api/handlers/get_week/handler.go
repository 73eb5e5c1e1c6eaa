package get_week

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	getWeekSlots "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

const (
	msgInvalidStart      = "некорректная дата начала, ожидается YYYY-MM-DD"
	msgInvalidLayout     = "некорректное представление, ожидается week или column"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается 12h или 24h"
	msgInvalidInput      = "некорректные параметры запроса"
	msgCalendarNotFound  = "календарь не найден или ссылка больше не действует"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now().UTC() }

type Handler struct {
	useCase      GetWeekSlotsUseCase
	weekDays     int
	timeProvider TimeProvider
	logger       Logger
}

// NewHandler создает handler сеток, weekDays - размер недельного окна
func NewHandler(useCase GetWeekSlotsUseCase, weekDays int, logger Logger) *Handler {
	if weekDays <= 0 {
		weekDays = domain.DefaultWeekDays
	}
	return &Handler{
		useCase:      useCase,
		weekDays:     weekDays,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени (для тестов)
func (h *Handler) WithTimeProvider(tp TimeProvider) *Handler {
	h.timeProvider = tp
	return h
}

// Handle GET /api/v1/calendars/{token}/week
// Query params: start (optional, YYYY-MM-DD), layout (week | column), timeFormat (12h | 24h)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	query := r.URL.Query()

	now := h.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	start, err := ParseStart(query.Get("start"), today)
	if err != nil {
		h.logger.Warn("GET /calendars/{token}/week - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	layout := booker.LayoutWeek
	if raw := query.Get("layout"); raw != "" {
		layout, err = booker.ParseLayout(raw)
		if err != nil || !layout.IsGrid() {
			h.logger.Warn("GET /calendars/{token}/week - Invalid layout: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLayout)
			return
		}
	}

	format, err := views.ParseTimeFormat(handlers.TimeFormatParam(r))
	if err != nil {
		h.logger.Warn("GET /calendars/{token}/week - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	// Обе сетки показывают одно окно дней, различается только шаг навигации
	days := h.weekDays

	result, err := h.useCase.Execute(r.Context(), &getWeekSlots.Request{Token: token, Start: start, Days: days})
	if err != nil {
		switch {
		case errors.Is(err, getWeekSlots.ErrInvalidInput):
			h.logger.Warn("GET /calendars/{token}/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getWeekSlots.ErrCalendarNotFound):
			h.logger.Warn("GET /calendars/{token}/week - Calendar not found: token=%s", token)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		default:
			h.logger.Error("GET /calendars/{token}/week - Failed to load window: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, layout, views.GridOptions{
		Labels: views.Labeler{Format: format},
		Today:  today,
	})

	h.logger.Info("GET /calendars/{token}/week - Window loaded: start=%s, days=%d, layout=%s, degraded_days=%d",
		start.Format(domain.DateFormat), days, layout, response.DegradedDays)
	handlers.RespondJSON(w, http.StatusOK, response)
}
