// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/app"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method answers 404 like an
// unknown path would, so callers cannot enumerate the routes.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, http.StatusNotFound, app.MsgNotFound)
}
