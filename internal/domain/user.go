package domain

import "time"

// UserRole represents the access level of an account
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleOwner UserRole = "owner"
)

// Valid reports whether the role is one of the known values
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleOwner
}

// User represents an account able to manage restaurants and reservations
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         UserRole
	RestaurantID *int64
	Verified     bool

	PasswordChangedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanManage reports whether the user may mutate data of the given restaurant
func (u *User) CanManage(restaurantID int64) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.RestaurantID != nil && *u.RestaurantID == restaurantID
}
