package service

import (
	"context"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/models"
)

type clientChatService struct {
	portal adapter.PortalAdapter
}

func NewClientChatService(portal adapter.PortalAdapter) ClientChatService {
	return &clientChatService{portal: portal}
}

func (c *clientChatService) Start(ctx context.Context) (*Conversation, error) {
	session, err := c.portal.NewSession(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return &Conversation{SessionID: session.SessionID, Transcript: NewTranscript()}, nil
}

func (c *clientChatService) Open(ctx context.Context, sessionID string) (*Conversation, error) {
	if sessionID == "" {
		return nil, ErrInvalidDataProvided
	}

	sessions, err := c.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	known := false
	for _, s := range sessions {
		if s.SessionID == sessionID {
			known = true
			break
		}
	}
	if !known {
		return &Conversation{SessionID: sessionID, Transcript: NewTranscript()}, nil
	}

	history, err := c.portal.History(ctx, sessionID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return &Conversation{
		SessionID:  sessionID,
		ReadOnly:   true,
		Transcript: NewTranscript(history.Turns...),
	}, nil
}

func (c *clientChatService) Sessions(ctx context.Context) ([]models.SessionSummary, error) {
	sessions, err := c.portal.ListSessions(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return sessions, nil
}

// Send follows append-then-reconcile: the user turn is recorded before the
// request goes out and is marked delivered or failed afterwards. A failed
// turn is left in place and never resubmitted.
func (c *clientChatService) Send(ctx context.Context, conv *Conversation, text string) (models.Turn, error) {
	if conv == nil || conv.Transcript == nil {
		return models.Turn{}, ErrInvalidDataProvided
	}
	if conv.ReadOnly {
		return models.Turn{}, ErrReadOnlyConversation
	}

	id, err := conv.Transcript.Begin(text)
	if err != nil {
		return models.Turn{}, err
	}

	reply, err := c.portal.SendMessage(ctx, models.ChatMessage{Message: text, SessionID: conv.SessionID})
	if err != nil {
		err = mapAdapterError(err)
		_ = conv.Transcript.Fail(id, err)
		return models.Turn{}, err
	}

	return conv.Transcript.Resolve(id, reply.Message)
}
