// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSession is returned by the API guards when the request carries no
	// valid session token, either in the cookie or in the Authorization
	// header.
	ErrNoSession = errors.New("no valid session")

	// ErrNoConsent is returned by the chat guard when the session's consent
	// snapshot is false.
	ErrNoConsent = errors.New("consent has not been given")

	// ErrUserMismatch is returned when a request body names a user other
	// than the token subject.
	ErrUserMismatch = errors.New("user id does not match session")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
