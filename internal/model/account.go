package model

import "time"

// AccountStatus enumerates the two states an account can be in.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusDisabled AccountStatus = "disabled"
)

// AccountRole distinguishes student accounts from administrative ones.
type AccountRole string

const (
	AccountRoleStudent AccountRole = "student"
	AccountRoleAdmin   AccountRole = "admin"
)

// Account is the credential and role record backing a User.
// The password is stored as a bcrypt hash, never plaintext.
type Account struct {
	ID           int           `json:"account_id"`
	Username     string        `json:"username"`
	Role         AccountRole   `json:"role"`
	Status       AccountStatus `json:"status"`
	PasswordHash string        `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// AdminLoginRequest is the payload for admin authentication.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}
