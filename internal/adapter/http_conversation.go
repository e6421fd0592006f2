package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

type httpConversationAdapter struct {
	client *utils.HTTPClient

	sendMessageURL string
	historyURL     string
	sessionsURL    string
	secret         string

	logger *logger.Logger
}

// NewHTTPConversationAdapter builds a [ConversationAdapter] for the endpoints
// in cfg. Every request is bounded by cfg.RequestTimeout.
func NewHTTPConversationAdapter(cfg config.Relay, log *logger.Logger) ConversationAdapter {
	log.Debug().Str("func", "NewHTTPConversationAdapter").Stringer("relay", cfg).Msg("creating conversation adapter")

	return &httpConversationAdapter{
		client:         utils.NewHTTPClient(cfg.RequestTimeout),
		sendMessageURL: cfg.SendMessageURL,
		historyURL:     cfg.HistoryURL,
		sessionsURL:    cfg.SessionsURL,
		secret:         cfg.SharedSecret,
		logger:         log,
	}
}

func (h *httpConversationAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	log := logger.FromContext(ctx)
	req.Pass = h.secret

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(h.sendMessageURL)
	if err != nil {
		log.Err(err).Str("func", "*httpConversationAdapter.SendMessage").Msg("send message request failed")
		return models.SendMessageResponse{}, fmt.Errorf("%w: send message request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().Str("func", "*httpConversationAdapter.SendMessage").Int("status", resp.StatusCode()).Msg("send message rejected")
		return models.SendMessageResponse{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	raw := resp.Body()
	var reply models.SendMessageResponse
	if err = json.Unmarshal(raw, &reply); err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("%w: decode send message response: %w", ErrUpstream, err)
	}
	reply.Raw = append(json.RawMessage(nil), raw...)

	return reply, nil
}

func (h *httpConversationAdapter) SessionHistory(ctx context.Context, req models.HistoryRequest) ([]models.HistoryRow, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(h.historyURL)
	if err != nil {
		log.Err(err).Str("func", "*httpConversationAdapter.SessionHistory").Msg("history request failed")
		return nil, fmt.Errorf("%w: history request: %w", ErrUpstream, err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Warn().Str("func", "*httpConversationAdapter.SessionHistory").Int("status", resp.StatusCode()).Msg("history unavailable, returning empty")
		return []models.HistoryRow{}, nil
	}

	var rows []models.HistoryRow
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("%w: decode history response: %w", ErrUpstream, err)
	}
	if rows == nil {
		rows = []models.HistoryRow{}
	}

	return rows, nil
}

func (h *httpConversationAdapter) ListSessions(ctx context.Context, req models.SessionsRequest) ([]models.SessionSummary, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(h.sessionsURL)
	if err != nil {
		log.Err(err).Str("func", "*httpConversationAdapter.ListSessions").Msg("sessions request failed")
		return nil, fmt.Errorf("%w: sessions request: %w", ErrUpstream, err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Warn().Str("func", "*httpConversationAdapter.ListSessions").Int("status", resp.StatusCode()).Msg("sessions unavailable, returning empty")
		return []models.SessionSummary{}, nil
	}

	var sr models.SessionsResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("%w: decode sessions response: %w", ErrUpstream, err)
	}
	if sr.Sessions == nil {
		sr.Sessions = []models.SessionSummary{}
	}

	return sr.Sessions, nil
}
