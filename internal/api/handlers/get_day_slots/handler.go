package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается 12h или 24h"
	msgInvalidInput      = "некорректные параметры запроса"
	msgCalendarNotFound  = "календарь не найден или ссылка больше не действует"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendars/{token}/days/{date}
// Query params: timeFormat (optional, 12h | 24h)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	useCaseReq, err := ToUseCaseRequest(token, vars["date"])
	if err != nil {
		h.logger.Warn("GET /calendars/{token}/days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	format, err := views.ParseTimeFormat(handlers.TimeFormatParam(r))
	if err != nil {
		h.logger.Warn("GET /calendars/{token}/days/{date} - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /calendars/{token}/days/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getDaySlots.ErrCalendarNotFound):
			h.logger.Warn("GET /calendars/{token}/days/{date} - Calendar not found: token=%s", token)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		default:
			h.logger.Error("GET /calendars/{token}/days/{date} - Failed to load slots: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, format)

	h.logger.Info("GET /calendars/{token}/days/{date} - Slots loaded: date=%s, available=%d, degraded=%t",
		response.Date, len(response.Slots), result.Day.Degraded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
