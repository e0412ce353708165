package list_reservations

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
)

// ReservationsService lists reservations
type ReservationsService interface {
	List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
