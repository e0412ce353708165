package delete_account

import "context"

// AccountsService deletes accounts
type AccountsService interface {
	DeleteAccount(ctx context.Context, userID int64) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
