package accounts

import "errors"

var (
	// ErrDuplicateEmail is returned when an account with the email already exists
	ErrDuplicateEmail = errors.New("account with this email already exists")

	// ErrInvalidCredentials is returned on a wrong email or password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotVerified is returned when the account email is not verified yet
	ErrNotVerified = errors.New("email address is not verified")

	// ErrInvalidToken is returned on an unknown, expired or reused token
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned when the account does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("accounts: internal error")
)
