package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/store"
	"github.com/MKhiriev/mentem-portal/models"
)

type consentService struct {
	userRepository store.UserRepository
	authService    AuthService
	now            func() time.Time

	logger *logger.Logger
}

func NewConsentService(userRepository store.UserRepository, authService AuthService, logger *logger.Logger) ConsentService {
	return &consentService{
		userRepository: userRepository,
		authService:    authService,
		now:            time.Now,
		logger:         logger,
	}
}

// SubmitConsent writes the consent flag, then refreshes the session token in
// the same call so the next gate evaluation already sees the consented state.
func (c *consentService) SubmitConsent(ctx context.Context, userID string) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.SessionToken{}, ErrInvalidDataProvided
	}

	if err := c.userRepository.UpdateConsent(ctx, userID, c.now()); err != nil {
		log.Err(err).Str("func", "*consentService.SubmitConsent").Str("user_id", userID).Msg("consent write failed")
		return models.SessionToken{}, fmt.Errorf("recording consent: %w", err)
	}

	token, err := c.authService.RefreshToken(ctx, userID)
	if err != nil {
		return models.SessionToken{}, err
	}

	log.Info().Str("user_id", userID).Msg("consent recorded")
	return token, nil
}
