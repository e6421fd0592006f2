package service

import (
	"context"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/models"
)

type clientAuthService struct {
	portal adapter.PortalAdapter
}

func NewClientAuthService(portal adapter.PortalAdapter) ClientAuthService {
	return &clientAuthService{portal: portal}
}

func (c *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	resp, err := c.portal.Login(ctx, creds)
	if err != nil {
		return models.Identity{}, mapAdapterError(err)
	}

	return resp.User, nil
}

func (c *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.Identity, error) {
	identity, err := c.portal.Signup(ctx, req)
	if err != nil {
		return models.Identity{}, mapAdapterError(err)
	}

	return identity, nil
}

func (c *clientAuthService) SubmitConsent(ctx context.Context) error {
	result, err := c.portal.SubmitConsent(ctx)
	if err != nil {
		return mapAdapterError(err)
	}
	if !result.Success {
		return ErrConsentRequired
	}

	return nil
}

func (c *clientAuthService) Logout(ctx context.Context) error {
	return mapAdapterError(c.portal.Logout(ctx))
}
