package create_reservation

import (
	"context"

	createReservation "github.com/m04kA/RSV-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationUseCase books a table sitting
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
