package get_table

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService reads single tables
type RestaurantsService interface {
	GetTable(ctx context.Context, restaurantID, tableID int64) (*models.TableResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
