// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/app"
	"github.com/MKhiriev/mentem-portal/internal/store"
	"github.com/MKhiriev/mentem-portal/models"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgLoginFailed {
			return ErrLoginFailed
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %s", ErrLoginFailed, app.MsgTooManyLoginAttempts)

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgConsentRequired {
			return ErrConsentRequired
		}
		return err

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoUserWasFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrEmailAlreadyExists

	case errors.Is(err, adapter.ErrBadGateway):
		return adapter.ErrUpstream
	}

	return err
}

// extractBody extracts the message from "bad request: <body>". A JSON body is
// decoded into [models.ErrorResponse] and its error field returned; any other
// body comes back as is.
func extractBody(err error) string {
	msg := err.Error()
	if _, body, found := strings.Cut(msg, ": "); found {
		msg = body
	}

	var resp models.ErrorResponse
	if json.Unmarshal([]byte(msg), &resp) == nil && resp.Error != "" {
		return resp.Error
	}
	return msg
}
