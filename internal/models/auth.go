package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims are the claims embedded in issued bearer tokens.
type JWTClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
