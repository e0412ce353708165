package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// ReservationRepository reads existing reservations for the target date
type ReservationRepository interface {
	// GetWithFilter returns reservations matching the filter, ordered by
	// start time when the filter targets a single date.
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// RestaurantRepository resolves the restaurant record
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
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
