package add_table

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService adds tables
type RestaurantsService interface {
	AddTable(ctx context.Context, actor *domain.User, restaurantID int64, req *models.AddTableRequest) (*models.TableResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
