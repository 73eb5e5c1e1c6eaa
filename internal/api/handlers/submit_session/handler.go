package submit_session

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
	msgSubmitInProgress   = "заявка уже отправляется"
	msgBookingRejected    = "бронирование отклонено"
	msgSubmitFailed       = "не удалось отправить заявку, попробуйте еще раз"
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

// Handle POST /api/v1/sessions/{sessionId}/submit
// При ошибке выбор в сессии сохраняется, запрос можно повторить
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	var contact models.ContactRequest
	if err := handlers.DecodeJSON(r, &contact); err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), id, &contact)
	if err != nil {
		var rejected *sessions.RejectedError
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: id=%s", id)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.As(err, &rejected):
			h.logger.Warn("POST /sessions/{id}/submit - Booking rejected: id=%s, message=%s", id, rejected.Message)
			message := rejected.Message
			if message == "" {
				message = msgBookingRejected
			}
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, sessions.ErrBookingRejected):
			h.logger.Warn("POST /sessions/{id}/submit - Booking rejected: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgBookingRejected)

		case errors.Is(err, sessions.ErrInvalidInput), errors.Is(err, sessions.ErrIncompleteSelection):
			h.logger.Warn("POST /sessions/{id}/submit - Invalid booking: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sessions.ErrAlreadyConfirmed):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyConfirmed)

		case errors.Is(err, sessions.ErrSubmitInProgress):
			handlers.RespondError(w, http.StatusConflict, msgSubmitInProgress)

		case errors.Is(err, sessions.ErrCalendarNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Calendar not found: id=%s", id)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, sessions.ErrInternal):
			h.logger.Error("POST /sessions/{id}/submit - Upstream failure: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmitFailed)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking confirmed: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

