package apply_action

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgCalendarNotFound   = "календарь не найден или ссылка больше не действует"
	msgAlreadyConfirmed   = "бронирование уже отправлено"
	msgSubmitInProgress   = "заявка отправляется, дождитесь ответа"
	msgUpstreamFailed     = "не удалось загрузить доступность, попробуйте позже"
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

// Handle POST /api/v1/sessions/{sessionId}/actions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	var action models.Action
	if err := handlers.DecodeJSON(r, &action); err != nil {
		h.logger.Warn("POST /sessions/{id}/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Apply(r.Context(), id, &action)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/actions - Session not found: id=%s", id)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidAction),
			errors.Is(err, sessions.ErrInvalidInput),
			errors.Is(err, sessions.ErrIncompleteSelection):
			h.logger.Warn("POST /sessions/{id}/actions - Invalid action: id=%s, type=%s, error=%v", id, action.Type, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sessions.ErrDateNotSelectable), errors.Is(err, sessions.ErrSlotNotFound):
			h.logger.Warn("POST /sessions/{id}/actions - Selection unavailable: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, err.Error())

		case errors.Is(err, sessions.ErrAlreadyConfirmed):
			h.logger.Warn("POST /sessions/{id}/actions - Session confirmed: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyConfirmed)

		case errors.Is(err, sessions.ErrSubmitInProgress):
			h.logger.Warn("POST /sessions/{id}/actions - Submit in progress: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgSubmitInProgress)

		case errors.Is(err, sessions.ErrCalendarNotFound):
			h.logger.Warn("POST /sessions/{id}/actions - Calendar not found: id=%s", id)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, sessions.ErrInternal):
			h.logger.Error("POST /sessions/{id}/actions - Upstream failure: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		default:
			h.logger.Error("POST /sessions/{id}/actions - Failed to apply action: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/actions - Action applied: id=%s, type=%s, step=%s", id, action.Type, result.State.Step)
	handlers.RespondJSON(w, http.StatusOK, result)
}
