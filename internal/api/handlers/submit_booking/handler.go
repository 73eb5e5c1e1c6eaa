package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSelection   = "некорректная дата или время бронирования"
	msgCalendarNotFound   = "календарь не найден или ссылка больше не действует"
	msgBookingRejected    = "бронирование отклонено"
	msgSubmitFailed       = "не удалось отправить заявку, попробуйте еще раз"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendars/{token}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendars/{token}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(token)
	if err != nil {
		h.logger.Warn("POST /calendars/{token}/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelection)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejected *submitBooking.RejectedError
		switch {
		case errors.As(err, &rejected):
			h.logger.Warn("POST /calendars/{token}/bookings - Booking rejected: token=%s, message=%s", token, rejected.Message)
			message := rejected.Message
			if message == "" {
				message = msgBookingRejected
			}
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, submitBooking.ErrInvalidInput), errors.Is(err, submitBooking.ErrIncompleteSelection):
			h.logger.Warn("POST /calendars/{token}/bookings - Invalid booking: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, submitBooking.ErrCalendarNotFound):
			h.logger.Warn("POST /calendars/{token}/bookings - Calendar not found: token=%s", token)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, submitBooking.ErrInternal):
			h.logger.Error("POST /calendars/{token}/bookings - Upstream failure: token=%s, error=%v", token, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmitFailed)

		default:
			h.logger.Error("POST /calendars/{token}/bookings - Failed to submit booking: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /calendars/{token}/bookings - Booking request submitted: token=%s, summary=%q", token, response.Summary)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
