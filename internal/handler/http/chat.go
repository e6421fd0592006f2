package http

import (
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

// sessionUser returns the token subject, rejecting a body that names anyone
// else. An empty claimed id means "me".
func sessionUser(r *http.Request, claimed string) (string, error) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	if claimed != "" && claimed != userID {
		return "", ErrUserMismatch
	}
	return userID, nil
}

// sendMessage relays one message and answers with the backend's reply
// exactly as received.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var msg models.ChatMessage
	if err := decodeJSON(w, r, &msg); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Send()
		writeError(w, err)
		return
	}

	userID, err := sessionUser(r, msg.UserID)
	if err != nil {
		log.Warn().Err(err).Str("claimed_user_id", msg.UserID).Msg("chat message for another user")
		writeError(w, err)
		return
	}

	reply, err := h.services.ChatService.SendMessage(ctx, models.SendMessageRequest{
		Message:   msg.Message,
		SessionID: msg.SessionID,
		UserID:    userID,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Str("session_id", msg.SessionID).Msg("message not relayed")
		writeError(w, err)
		return
	}

	if len(reply.Raw) > 0 {
		_, _ = utils.WriteRawJSON(w, reply.Raw, http.StatusOK)
		return
	}
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: reply.Message}, http.StatusOK)
}

func (h *Handler) fetchHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.HistoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.fetchHistory").Send()
		writeError(w, err)
		return
	}

	userID, err := sessionUser(r, req.UserID)
	if err != nil {
		log.Warn().Err(err).Str("claimed_user_id", req.UserID).Msg("history for another user")
		writeError(w, err)
		return
	}
	req.UserID = userID

	history, err := h.services.ChatService.FetchHistory(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchHistory").Str("session_id", req.SessionID).Send()
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	sessions, err := h.services.ChatService.ListSessions(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSessions").Send()
		writeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []models.SessionSummary{}
	}

	_, _ = utils.WriteJSON(w, models.SessionsResponse{Sessions: sessions}, http.StatusOK)
}

func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.NewSession{SessionID: h.services.ChatService.NewSessionID(r.Context())}, http.StatusCreated)
}
