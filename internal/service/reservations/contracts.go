package reservations

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// ReservationRepository is the reservation storage interface
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter, params domain.ListParams) ([]*domain.Reservation, int, error)
	Update(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// RestaurantRepository is the restaurant storage interface
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// TransactionManager runs callbacks inside a database transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
