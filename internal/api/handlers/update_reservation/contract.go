package update_reservation

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
)

// ReservationsService reschedules reservations
type ReservationsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
