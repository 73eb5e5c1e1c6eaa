package get_month

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	getMonth "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
)

const (
	msgInvalidMonth     = "некорректный год или месяц"
	msgInvalidInput     = "некорректные параметры запроса"
	msgCalendarNotFound = "календарь не найден или ссылка больше не действует"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now().UTC() }

type Handler struct {
	useCase      GetMonthUseCase
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(useCase GetMonthUseCase, logger Logger) *Handler {
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

// Handle GET /api/v1/calendars/{token}/months/{year}/{month}
// Недоступный месяц возвращается полностью заблокированным с degraded=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	useCaseReq, err := ToUseCaseRequest(token, vars["year"], vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendars/{token}/months/{year}/{month} - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getMonth.ErrInvalidInput):
			h.logger.Warn("GET /calendars/{token}/months/{year}/{month} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getMonth.ErrCalendarNotFound):
			h.logger.Warn("GET /calendars/{token}/months/{year}/{month} - Calendar not found: token=%s", token)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		default:
			h.logger.Error("GET /calendars/{token}/months/{year}/{month} - Failed to load month: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, h.timeProvider.Now())

	h.logger.Info("GET /calendars/{token}/months/{year}/{month} - Month loaded: %d-%02d, degraded=%t",
		useCaseReq.Year, useCaseReq.Month, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
