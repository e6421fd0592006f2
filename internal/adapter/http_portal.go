package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs the HTTP implementation of [PortalAdapter].
// cfg.HTTPAddress may omit the scheme, http is assumed then.
func NewHTTPPortalAdapter(cfg config.ClientAdapter, log *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpPortalAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPortalAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpPortalAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpPortalAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.Identity, error) {
	var identity models.Identity

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&identity).
		Post("/api/auth/signup")
	if err != nil {
		return models.Identity{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// Login implements [PortalAdapter]. The bearer token is read from the
// Authorization response header.
func (h *httpPortalAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return result, nil
}

func (h *httpPortalAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// SubmitConsent implements [PortalAdapter]. The server answers with a
// refreshed token that carries the new consent snapshot.
func (h *httpPortalAdapter) SubmitConsent(ctx context.Context) (models.ConsentResult, error) {
	var result models.ConsentResult

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Post("/api/consent")
	if err != nil {
		return models.ConsentResult{}, fmt.Errorf("consent request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConsentResult{}, err
	}

	h.keepRefreshedToken(resp)
	return result, nil
}

func (h *httpPortalAdapter) ListSessions(ctx context.Context) ([]models.SessionSummary, error) {
	var result models.SessionsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/chat/sessions")
	if err != nil {
		return nil, fmt.Errorf("list sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Sessions, nil
}

func (h *httpPortalAdapter) NewSession(ctx context.Context) (models.NewSession, error) {
	var result models.NewSession

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Post("/api/chat/sessions")
	if err != nil {
		return models.NewSession{}, fmt.Errorf("new session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewSession{}, err
	}

	return result, nil
}

func (h *httpPortalAdapter) History(ctx context.Context, sessionID string) (models.History, error) {
	var result models.History

	resp, err := h.authedRequest(ctx).
		SetBody(models.HistoryRequest{SessionID: sessionID}).
		SetResult(&result).
		Post("/api/chat/history")
	if err != nil {
		return models.History{}, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.History{}, err
	}

	return result, nil
}

func (h *httpPortalAdapter) SendMessage(ctx context.Context, msg models.ChatMessage) (models.SendMessageResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(msg).
		Post("/api/chat/messages")
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SendMessageResponse{}, err
	}

	var reply models.SendMessageResponse
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("decode send message response: %w", err)
	}
	reply.Raw = append(json.RawMessage(nil), resp.Body()...)

	return reply, nil
}

func (h *httpPortalAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpPortalAdapter) keepRefreshedToken(resp *resty.Response) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		h.logger.Debug().Str("func", "*httpPortalAdapter.keepRefreshedToken").Msg("no refreshed token in response")
		return
	}
	h.SetToken(token)
}
