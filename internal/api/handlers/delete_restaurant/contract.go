package delete_restaurant

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// RestaurantsService deletes restaurants
type RestaurantsService interface {
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
