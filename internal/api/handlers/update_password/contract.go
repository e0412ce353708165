package update_password

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

// AccountsService changes account passwords
type AccountsService interface {
	UpdatePassword(ctx context.Context, userID int64, req *models.UpdatePasswordRequest) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
