package service

import (
	"strings"
	"sync"

	"github.com/MKhiriev/mentem-portal/models"
)

// Conversation is one open chat in the terminal client.
type Conversation struct {
	SessionID string

	// ReadOnly is set for conversations loaded from history.
	ReadOnly bool

	Transcript *Transcript
}

// Transcript is the ordered list of turns of a conversation. At most one
// user turn may be pending at a time.
type Transcript struct {
	mu      sync.Mutex
	turns   []models.Turn
	pending int // id of the pending user turn, 0 when idle
}

// NewTranscript starts a transcript with already delivered turns.
func NewTranscript(turns ...models.Turn) *Transcript {
	return &Transcript{turns: append([]models.Turn(nil), turns...)}
}

// Begin appends text as a pending user turn and returns its id.
func (t *Transcript) Begin(text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrInvalidDataProvided
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != 0 {
		return 0, ErrSendInFlight
	}

	id := len(t.turns) + 1
	t.turns = append(t.turns, models.Turn{ID: id, Sender: models.SenderUser, Text: text, Status: models.TurnPending})
	t.pending = id

	return id, nil
}

// Resolve marks the pending turn delivered and appends the bot reply. An
// empty reply is a failure: the user turn is marked failed and no bot turn
// is added.
func (t *Transcript) Resolve(id int, reply string) (models.Turn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id == 0 || id != t.pending {
		return models.Turn{}, ErrNoPendingTurn
	}

	if strings.TrimSpace(reply) == "" {
		t.failLocked(id, ErrEmptyReply)
		return models.Turn{}, ErrEmptyReply
	}

	t.turns[id-1].Status = models.TurnDelivered
	bot := models.Turn{ID: len(t.turns) + 1, Sender: models.SenderBot, Text: reply, Status: models.TurnDelivered}
	t.turns = append(t.turns, bot)
	t.pending = 0

	return bot, nil
}

// Fail marks the pending turn failed with cause. The turn stays in the
// transcript and is not resent.
func (t *Transcript) Fail(id int, cause error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id == 0 || id != t.pending {
		return ErrNoPendingTurn
	}

	t.failLocked(id, cause)
	return nil
}

func (t *Transcript) failLocked(id int, cause error) {
	t.turns[id-1].Status = models.TurnFailed
	if cause != nil {
		t.turns[id-1].Error = cause.Error()
	}
	t.pending = 0
}

// Pending reports whether a send is in flight.
func (t *Transcript) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != 0
}

// Turns returns a copy of the turns in order.
func (t *Transcript) Turns() []models.Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Turn(nil), t.turns...)
}
