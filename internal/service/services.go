package service

import (
	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/store"
)

type Services struct {
	AuthService    AuthService
	ConsentService ConsentService
	ChatService    ChatService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, relay adapter.ConversationAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService := NewAuthService(storages.UserRepository, cfg.App, logger)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		ConsentService: NewConsentService(storages.UserRepository, authService, logger),
		ChatService:    NewChatValidationService().Wrap(NewChatService(relay, logger)),
		AppInfoService: appInfoService,
	}, nil
}
