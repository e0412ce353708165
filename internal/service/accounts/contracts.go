package accounts

import (
	"context"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/internal/infra/tokenstore"
)

// UserRepository is the account storage interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	MarkVerified(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
	Delete(ctx context.Context, id int64) error
}

// TokenStore issues and consumes one-shot account tokens
type TokenStore interface {
	Issue(ctx context.Context, purpose tokenstore.Purpose, userID int64) (string, error)
	Consume(ctx context.Context, purpose tokenstore.Purpose, token string) (int64, error)
}

// Mailer sends account mail
type Mailer interface {
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
