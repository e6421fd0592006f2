// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// portal handlers, middleware and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgLoginFailed is the single answer to any credential mismatch.
	MsgLoginFailed = "login failed"

	// MsgTooManyLoginAttempts is returned by the login rate limiter.
	MsgTooManyLoginAttempts = "too many login attempts"

	// MsgEmailAlreadyExists is returned by signup for a taken email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a session token is
	// missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgConsentRequired is returned by chat endpoints until consent is given.
	MsgConsentRequired = "consent is required"

	// MsgUserMismatch is returned when a body names a different user than
	// the session.
	MsgUserMismatch = "user does not match session"

	// MsgUserNotFound is returned when the session user no longer exists.
	MsgUserNotFound = "user not found"

	// MsgConsentRecorded confirms a successful consent submission.
	MsgConsentRecorded = "consent recorded"

	// MsgLoggedOut confirms logout.
	MsgLoggedOut = "logged out"

	// MsgUpstreamUnavailable is returned when the conversational backend
	// can not be reached or rejects the request.
	MsgUpstreamUnavailable = "conversational backend unavailable"

	// MsgStorageUnavailable is returned for transient database failures.
	MsgStorageUnavailable = "storage temporarily unavailable"

	// MsgNotFound is the body of unknown routes.
	MsgNotFound = "not found"
)
