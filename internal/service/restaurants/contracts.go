package restaurants

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

// RestaurantRepository is the restaurant storage interface
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
	Update(ctx context.Context, id int64, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	AddTable(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetTables(ctx context.Context, restaurantID int64) ([]*domain.Table, error)
	GetTableByID(ctx context.Context, id int64) (*domain.Table, error)
	UpdateTable(ctx context.Context, id int64, table *domain.Table) (*domain.Table, error)
	DeleteTable(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the account storage interface
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SetRestaurant(ctx context.Context, id, restaurantID int64) error
}

// TransactionManager runs callbacks inside a database transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
