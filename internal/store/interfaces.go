package store

import (
	"context"
	"time"

	"github.com/MKhiriev/mentem-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists patient accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with CreatedAt filled in.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks a user up by normalised email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID looks a user up by id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// UpdateConsent sets consent_given to true. The first consent time is
	// kept when the flag is already set.
	UpdateConsent(ctx context.Context, userID string, at time.Time) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
