package http

import (
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/gate"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

// loginPage renders the login form for anonymous callers and the consent
// form for callers that still have to consent. Consented callers never get
// here, the gate sends them to the root.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	claims, _ := utils.GetSessionClaimsFromContext(r.Context())
	state := gate.StateOf(claims)

	view := models.PageView{View: h.gate.View(state)}
	if claims != nil {
		identity := claims.Identity()
		view.User = &identity
	}
	if state == gate.Unauthenticated {
		view.CallbackURL = utils.SafeRedirect(r.URL.Query().Get(h.gate.CallbackParam), "")
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

// chatPage renders the chat view with a fresh session id and the caller's
// past sessions. An unreachable backend degrades to an empty session list.
func (h *Handler) chatPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, _ := utils.GetSessionClaimsFromContext(ctx)
	identity := claims.Identity()

	sessions, err := h.services.ChatService.ListSessions(ctx, identity.ID)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.chatPage").Msg("session list unavailable")
		sessions = nil
	}

	_, _ = utils.WriteJSON(w, models.PageView{
		View:      models.ViewChat,
		User:      &identity,
		SessionID: h.services.ChatService.NewSessionID(ctx),
		Sessions:  sessions,
	}, http.StatusOK)
}
