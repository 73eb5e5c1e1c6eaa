package apply_action

import (
	"context"

	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
)

type SessionService interface {
	Apply(ctx context.Context, id string, action *models.Action) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
