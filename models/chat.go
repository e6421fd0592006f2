package models

import (
	"encoding/json"
	"time"
)

// Sender identifies who produced a chat turn.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// TurnStatus tracks a user turn through the send protocol. Bot turns and
// turns loaded from history are always delivered.
type TurnStatus string

const (
	TurnPending   TurnStatus = "pending"
	TurnDelivered TurnStatus = "delivered"
	TurnFailed    TurnStatus = "failed"
)

// Turn is one message in a conversation.
type Turn struct {
	ID     int        `json:"id"`
	Sender Sender     `json:"sender"`
	Text   string     `json:"text"`
	Status TurnStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// SendMessageRequest is the upstream send-message payload.
type SendMessageRequest struct {
	Pass      string `json:"pass"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// ChatMessage is the inbound body of the portal's send endpoint.
type ChatMessage struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`
}

// SendMessageResponse is the upstream reply. Raw keeps the payload exactly as
// received so it can be passed through unchanged.
type SendMessageResponse struct {
	Message string          `json:"message"`
	Raw     json.RawMessage `json:"-"`
}

// HistoryRequest is the upstream chat-history payload.
type HistoryRequest struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// HistoryRow is one user message and the bot response to it.
type HistoryRow struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
	Timestamp   string `json:"timestamp"`
}

// SessionsRequest is the upstream session-list payload.
type SessionsRequest struct {
	UserID string `json:"user_id"`
}

// SessionsResponse wraps the upstream session list.
type SessionsResponse struct {
	Sessions []SessionSummary `json:"sessions"`
}

// SessionSummary describes a past conversation.
type SessionSummary struct {
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`

	// At is Timestamp parsed; zero when the upstream value is not a time.
	At time.Time `json:"-"`
}

// History is the portal's chat-history response.
type History struct {
	SessionID string `json:"session_id"`
	ReadOnly  bool   `json:"read_only"`
	Turns     []Turn `json:"turns"`
}

// NewSession is returned when a fresh conversation is started.
type NewSession struct {
	SessionID string `json:"session_id"`
}
