package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/mentem-portal/internal/validators"
	"github.com/MKhiriev/mentem-portal/models"
)

// ChatValidationService rejects incomplete chat requests before they reach
// the conversational backend.
type ChatValidationService struct {
	inner     ChatService
	validator validators.Validator
}

func NewChatValidationService() ChatServiceWrapper {
	return &ChatValidationService{
		validator: validators.NewPortalValidator(),
	}
}

func (v *ChatValidationService) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SendMessage(ctx, req)
}

func (v *ChatValidationService) FetchHistory(ctx context.Context, req models.HistoryRequest) (models.History, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.History{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.FetchHistory(ctx, req)
}

func (v *ChatValidationService) ListSessions(ctx context.Context, userID string) ([]models.SessionSummary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.ListSessions(ctx, userID)
}

func (v *ChatValidationService) NewSessionID(ctx context.Context) string {
	return v.inner.NewSessionID(ctx)
}

func (v *ChatValidationService) Wrap(wrapped ChatService) ChatService {
	v.inner = wrapped
	return v
}
