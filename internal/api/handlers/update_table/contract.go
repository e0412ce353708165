package update_table

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService updates tables
type RestaurantsService interface {
	UpdateTable(ctx context.Context, actor *domain.User, restaurantID, tableID int64, req *models.UpdateTableRequest) (*models.TableResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
