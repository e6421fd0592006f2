package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a session token.
//
// The subject claim holds the user id. ConsentGiven is a snapshot taken when
// the token was signed; it only changes when the token is refreshed.
type SessionClaims struct {
	jwt.RegisteredClaims

	Name         string `json:"name"`
	Email        string `json:"email"`
	ConsentGiven bool   `json:"consent_given"`
}

// UserID returns the subject claim.
func (c *SessionClaims) UserID() string {
	return c.Subject
}

// Identity returns the identity snapshot stored in the claims.
func (c *SessionClaims) Identity() Identity {
	return Identity{
		ID:           c.Subject,
		Email:        c.Email,
		Name:         c.Name,
		ConsentGiven: c.ConsentGiven,
	}
}

// SessionToken is a signed session together with its parsed claims.
type SessionToken struct {
	Claims *SessionClaims `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}

// ExpiresAt returns the expiry of the token or the zero time when unknown.
func (t *SessionToken) ExpiresAt() time.Time {
	if t.Claims == nil || t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// SessionView is the public shape of the current session.
type SessionView struct {
	Authenticated bool      `json:"authenticated"`
	User          *Identity `json:"user,omitempty"`
	ExpiresAt     time.Time `json:"expires_at,omitzero"`
}
