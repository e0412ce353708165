package get_restaurant

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService reads restaurants
type RestaurantsService interface {
	GetByID(ctx context.Context, id int64) (*models.RestaurantResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
