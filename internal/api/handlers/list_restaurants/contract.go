package list_restaurants

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService lists restaurants
type RestaurantsService interface {
	List(ctx context.Context) (*models.RestaurantListResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
