package update_account

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

// AccountsService updates account details
type AccountsService interface {
	UpdateAccount(ctx context.Context, userID int64, req *models.UpdateAccountRequest) (*models.UserResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
