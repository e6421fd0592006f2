package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/app"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/internal/store"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

type errorStatus struct {
	status  int
	message string
}

// errorStatusMap is consulted in order; the first match wins, so wrapping
// errors go before the ones they may wrap.
var errorStatusMap = []struct {
	target error
	errorStatus
}{
	{ErrInvalidJSON, errorStatus{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrNoSession, errorStatus{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrNoConsent, errorStatus{http.StatusForbidden, app.MsgConsentRequired}},
	{ErrUserMismatch, errorStatus{http.StatusForbidden, app.MsgUserMismatch}},

	{service.ErrInvalidDataProvided, errorStatus{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrLoginFailed, errorStatus{http.StatusUnauthorized, app.MsgLoginFailed}},
	{service.ErrTokenIsExpiredOrInvalid, errorStatus{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrTokenCreationFailed, errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}},

	{adapter.ErrUpstream, errorStatus{http.StatusBadGateway, app.MsgUpstreamUnavailable}},

	{store.ErrEmailAlreadyExists, errorStatus{http.StatusConflict, app.MsgEmailAlreadyExists}},
	{store.ErrNoUserWasFound, errorStatus{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrStorageUnavailable, errorStatus{http.StatusServiceUnavailable, app.MsgStorageUnavailable}},
	{store.ErrBuildingSQLQuery, errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRow, errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func statusFromError(err error) errorStatus {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorStatus
		}
	}
	return errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError maps err onto a status and writes it as {"error": message}.
func writeError(w http.ResponseWriter, err error) {
	s := statusFromError(err)
	writeErrorMessage(w, s.status, s.message)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
