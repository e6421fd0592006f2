package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

// timestampLayouts are tried in order when parsing upstream session times.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

type chatService struct {
	relay adapter.ConversationAdapter
	ids   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewChatService(relay adapter.ConversationAdapter, logger *logger.Logger) ChatService {
	return &chatService{
		relay:  relay,
		ids:    utils.NewRandomUUIDGenerator(),
		logger: logger,
	}
}

// SendMessage forwards one message. The reply is returned as received,
// errors stay wrapped with adapter.ErrUpstream. There is no retry.
func (c *chatService) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	reply, err := c.relay.SendMessage(ctx, req)
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("sending message: %w", err)
	}

	return reply, nil
}

// FetchHistory loads a past conversation. Conversations loaded this way are
// read-only.
func (c *chatService) FetchHistory(ctx context.Context, req models.HistoryRequest) (models.History, error) {
	rows, err := c.relay.SessionHistory(ctx, req)
	if err != nil {
		return models.History{}, fmt.Errorf("fetching history: %w", err)
	}

	return models.History{
		SessionID: req.SessionID,
		ReadOnly:  true,
		Turns:     FlattenHistory(rows),
	}, nil
}

func (c *chatService) ListSessions(ctx context.Context, userID string) ([]models.SessionSummary, error) {
	sessions, err := c.relay.ListSessions(ctx, models.SessionsRequest{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	return SortSessions(sessions), nil
}

func (c *chatService) NewSessionID(ctx context.Context) string {
	return c.ids.Generate()
}

// FlattenHistory turns N history rows into 2N turns, each user message
// followed by the bot response to it. Turn ids start at 1.
func FlattenHistory(rows []models.HistoryRow) []models.Turn {
	turns := make([]models.Turn, 0, 2*len(rows))
	for _, row := range rows {
		turns = append(turns,
			models.Turn{ID: len(turns) + 1, Sender: models.SenderUser, Text: row.UserMessage, Status: models.TurnDelivered},
			models.Turn{ID: len(turns) + 2, Sender: models.SenderBot, Text: row.BotResponse, Status: models.TurnDelivered},
		)
	}
	return turns
}

// SortSessions parses every timestamp and orders the sessions newest first.
// The sort is stable; sessions with an unparsable timestamp keep their
// relative order at the end. The input slice is not modified.
func SortSessions(sessions []models.SessionSummary) []models.SessionSummary {
	sorted := make([]models.SessionSummary, len(sessions))
	for i, s := range sessions {
		s.At = parseTimestamp(s.Timestamp)
		sorted[i] = s
	}

	slices.SortStableFunc(sorted, func(a, b models.SessionSummary) int {
		switch {
		case a.At.IsZero() && b.At.IsZero():
			return 0
		case a.At.IsZero():
			return 1
		case b.At.IsZero():
			return -1
		}
		return b.At.Compare(a.At)
	})

	return sorted
}

func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
