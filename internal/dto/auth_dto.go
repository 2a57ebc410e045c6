package dto

import "time"

// LoginDTO carries the shared-secret admin password.
type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}

// TokenDTO is the session token returned on a successful login.
type TokenDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
