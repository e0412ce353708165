package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// ReservationRepository persists reservations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// RestaurantRepository resolves the restaurant record
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// TransactionManager runs the availability re-check and the insert in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time, injectable for tests
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
