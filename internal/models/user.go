package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User is an account record keyed by username. The password field holds
// a bcrypt hash and is never serialized in responses.
type User struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}

// NewUser builds a user with the default role and active flag. The
// password must already be hashed.
func NewUser(username, email, fullName, hashedPassword string) User {
	return User{
		Username:  username,
		Email:     email,
		FullName:  fullName,
		Password:  hashedPassword,
		Role:      RoleUser,
		CreatedAt: time.Now().UTC(),
		Active:    true,
	}
}
