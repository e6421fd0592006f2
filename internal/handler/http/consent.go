package http

import (
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/app"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

// submitConsent records consent and replaces the session token before the
// response is written, so the very next gate evaluation sees the consented
// state. On a failed write the old token stays in place.
func (h *Handler) submitConsent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)
	token, err := h.services.ConsentService.SubmitConsent(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitConsent").Str("user_id", userID).Msg("consent not recorded")
		writeError(w, err)
		return
	}

	h.setSession(w, token)
	log.Info().Str("user_id", userID).Msg("consent recorded")

	_, _ = utils.WriteJSON(w, models.ConsentResult{Success: true, Message: app.MsgConsentRecorded}, http.StatusOK)
}
