package reset_password

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

// AccountsService completes password resets
type AccountsService interface {
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
