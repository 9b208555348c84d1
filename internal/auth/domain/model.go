package domain

import "time"

// RoleAdmin is the only role this service issues or accepts.
const RoleAdmin = "Admin"

// AdminAccount is the single administrator allowed to edit projects.
// PasswordHash is a bcrypt hash; the plaintext is never stored.
type AdminAccount struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the verified identity carried by a token.
type Principal struct {
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}
