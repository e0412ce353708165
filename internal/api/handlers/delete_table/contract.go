package delete_table

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// RestaurantsService deletes tables
type RestaurantsService interface {
	DeleteTable(ctx context.Context, actor *domain.User, restaurantID, tableID int64) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
