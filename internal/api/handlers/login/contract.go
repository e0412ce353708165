package login

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

// AccountsService authenticates accounts
type AccountsService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
