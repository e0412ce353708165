package register_restaurant

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService registers restaurants
type RestaurantsService interface {
	Register(ctx context.Context, actor *domain.User, req *models.RegisterRestaurantRequest) (*models.RestaurantResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
