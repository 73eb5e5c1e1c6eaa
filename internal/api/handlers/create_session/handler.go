package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCalendarNotFound   = "календарь не найден или ссылка больше не действует"
	msgTooManySessions    = "сервис перегружен, попробуйте позже"
	msgUpstreamFailed     = "не удалось загрузить календарь, попробуйте позже"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sessions.ErrCalendarNotFound):
			h.logger.Warn("POST /sessions - Calendar not found: token=%s", req.Token)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, sessions.ErrTooManySessions):
			h.logger.Warn("POST /sessions - Session limit reached")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTooManySessions)

		case errors.Is(err, sessions.ErrInternal):
			h.logger.Error("POST /sessions - Upstream failure: token=%s, error=%v", req.Token, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		default:
			h.logger.Error("POST /sessions - Failed to create session: token=%s, error=%v", req.Token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: id=%s, layout=%s", result.ID, result.State.Layout)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
