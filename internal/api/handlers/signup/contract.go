package signup

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

// AccountsService creates accounts
type AccountsService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.UserResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
