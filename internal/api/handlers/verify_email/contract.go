package verify_email

import "context"

// AccountsService verifies account emails
type AccountsService interface {
	VerifyEmail(ctx context.Context, token string) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
