package update_restaurant

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService updates restaurants
type RestaurantsService interface {
	Update(ctx context.Context, actor *domain.User, id int64, req *models.UpdateRestaurantRequest) (*models.RestaurantResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
