package cancel_reservation

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
)

// ReservationsService cancels reservations
type ReservationsService interface {
	Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
