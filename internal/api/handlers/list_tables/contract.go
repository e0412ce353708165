package list_tables

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService lists tables
type RestaurantsService interface {
	GetTables(ctx context.Context, restaurantID int64) (*models.TableListResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
