package http

import (
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/app"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		log.Err(err).Str("func", "*Handler.login").Send()
		writeError(w, err)
		return
	}

	identity, err := h.services.AuthService.VerifyCredentials(ctx, creds)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("login rejected")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, identity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("creation of token failed")
		writeError(w, err)
		return
	}

	h.setSession(w, token)
	log.Info().Str("user_id", identity.ID).Bool("consent_given", identity.ConsentGiven).Msg("user logged in")

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Redirect: h.loginRedirect(identity, creds.CallbackURL),
		User:     identity,
	}, http.StatusOK)
}

// loginRedirect sends callers without consent to the consent form and
// everyone else to their sanitised callback or the root.
func (h *Handler) loginRedirect(identity models.Identity, callback string) string {
	if !identity.ConsentGiven {
		return h.gate.LoginPath
	}
	target := utils.SafeRedirect(callback, h.gate.RootPath)
	if target == h.gate.LoginPath {
		return h.gate.RootPath
	}
	return target
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.signup").Send()
		writeError(w, err)
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signup").Msg("signup rejected")
		writeError(w, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user signed up")
	_, _ = utils.WriteJSON(w, user.Identity(), http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetSessionClaimsFromContext(r.Context())
	if !ok {
		_, _ = utils.WriteJSON(w, models.SessionView{}, http.StatusOK)
		return
	}

	_, _ = utils.WriteJSON(w, sessionView(&models.SessionToken{Claims: claims}), http.StatusOK)
}

// refreshSession is the explicit update trigger: the token is re-signed from
// the stored user so a consent given elsewhere becomes visible.
func (h *Handler) refreshSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)
	token, err := h.services.AuthService.RefreshToken(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.refreshSession").Msg("refresh failed")
		writeError(w, err)
		return
	}

	h.setSession(w, token)
	_, _ = utils.WriteJSON(w, sessionView(&token), http.StatusOK)
}

func sessionView(token *models.SessionToken) models.SessionView {
	identity := token.Claims.Identity()
	return models.SessionView{
		Authenticated: true,
		User:          &identity,
		ExpiresAt:     token.ExpiresAt(),
	}
}
