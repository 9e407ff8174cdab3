package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the stand-in authenticated-user record. Identity is asserted by
// the external provider; no credentials are stored here.
type User struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	Subject     string    `json:"-"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Claims struct {
	UserID       string `json:"user_id"`
	UserEmail    string `json:"user_email,omitempty"`
	UserName     string `json:"user_name,omitempty"`
	UserProvider string `json:"user_provider,omitempty"`
	jwt.RegisteredClaims
}

// UserLocation is what the geolocation collaborator resolves to.
type UserLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}
