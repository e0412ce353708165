package forgot_password

import "context"

// AccountsService starts password resets
type AccountsService interface {
	ForgotPassword(ctx context.Context, email string) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
