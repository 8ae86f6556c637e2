package models

import "time"

// User is the authenticated player profile.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// AuthResult is the body of a successful login or registration. The token
// pair may be absent on registration when the backend requires a separate
// login.
type AuthResult struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
