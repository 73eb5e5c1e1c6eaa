package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	loadCalendar "github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
)

const (
	msgInvalidToken     = "некорректная ссылка на календарь"
	msgCalendarNotFound = "календарь не найден или ссылка больше не действует"
	msgUpstreamFailed   = "не удалось загрузить календарь, попробуйте позже"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

type Handler struct {
	useCase      LoadCalendarUseCase
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(useCase LoadCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени (для тестов)
func (h *Handler) WithTimeProvider(tp TimeProvider) *Handler {
	h.timeProvider = tp
	return h
}

// Handle GET /api/v1/calendars/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.useCase.Execute(r.Context(), &loadCalendar.Request{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, loadCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendars/{token} - Invalid token: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToken)

		case errors.Is(err, loadCalendar.ErrCalendarNotFound):
			h.logger.Warn("GET /calendars/{token} - Calendar not found: token=%s", token)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, loadCalendar.ErrInternal):
			h.logger.Error("GET /calendars/{token} - Upstream failure: token=%s, error=%v", token, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		default:
			h.logger.Error("GET /calendars/{token} - Failed to load calendar: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, h.timeProvider.Now())

	h.logger.Info("GET /calendars/{token} - Calendar loaded: calendar_id=%d, mode=%s",
		result.Calendar.ID, result.Calendar.BookingMode)
	handlers.RespondJSON(w, http.StatusOK, response)
}
