package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/RSV-ReservationService/internal/api/handlers"
	"github.com/m04kA/RSV-ReservationService/internal/domain"
)

const msgMissingToken = "missing or malformed authorization header"

type contextKey string

const userContextKey contextKey = "auth.user"

// Authenticator resolves a bearer token to the account behind it
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Logger is the logging interface
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth guards routes behind JWT bearer authentication
type Auth struct {
	authenticator Authenticator
	logger        Logger
}

// NewAuth creates the auth middleware
func NewAuth(authenticator Authenticator, logger Logger) *Auth {
	return &Auth{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Middleware rejects requests without a valid bearer token and stores the
// resolved account in the request context.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			a.logger.Warn("auth: %s %s - missing bearer token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		user, err := a.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			a.logger.Warn("auth: %s %s - rejected token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// UserFromContext returns the authenticated account stored by the middleware
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}
