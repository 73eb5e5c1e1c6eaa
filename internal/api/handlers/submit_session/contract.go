package submit_session

import (
	"context"

	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
)

type SessionService interface {
	Submit(ctx context.Context, id string, contact *models.ContactRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
