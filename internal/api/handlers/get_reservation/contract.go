package get_reservation

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
)

// ReservationsService reads reservations
type ReservationsService interface {
	GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
