package delete_reservation

import "context"

// ReservationsService deletes reservations
type ReservationsService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
