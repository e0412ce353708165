package get_account

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

// AccountsService reads accounts
type AccountsService interface {
	Get(ctx context.Context, id int64) (*models.UserResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
