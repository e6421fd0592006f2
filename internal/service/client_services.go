package service

import "github.com/MKhiriev/mentem-portal/internal/adapter"

type ClientServices struct {
	AuthService ClientAuthService
	ChatService ClientChatService
}

func NewClientServices(portal adapter.PortalAdapter) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(portal),
		ChatService: NewClientChatService(portal),
	}
}
