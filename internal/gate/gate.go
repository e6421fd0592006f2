// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate decides whether a page request may proceed based on the
// session state carried by the caller's token.
//
// Evaluation is a pure function of (state, path): it performs no I/O and
// never consults the user store, so a stale consent snapshot in the token is
// authoritative until the token is refreshed.
package gate

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/mentem-portal/models"
)

// State is the session state of a request.
type State int

const (
	// Unauthenticated means no token, or a token that failed verification.
	Unauthenticated State = iota
	// AuthenticatedNoConsent means a valid token whose consent snapshot is false.
	AuthenticatedNoConsent
	// AuthenticatedConsented means a valid token with consent recorded.
	AuthenticatedConsented
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case AuthenticatedNoConsent:
		return "authenticated_no_consent"
	case AuthenticatedConsented:
		return "authenticated_consented"
	default:
		return "unknown"
	}
}

// StateOf derives the state from verified claims. nil claims are
// unauthenticated.
func StateOf(claims *models.SessionClaims) State {
	switch {
	case claims == nil || claims.UserID() == "":
		return Unauthenticated
	case !claims.ConsentGiven:
		return AuthenticatedNoConsent
	default:
		return AuthenticatedConsented
	}
}

// Action is what the transport must do with the request.
type Action int

const (
	Allow Action = iota
	Redirect
)

// Decision is the outcome of an evaluation. Location is set only for
// Redirect.
type Decision struct {
	Action   Action
	Location string
}

// Gate holds the routing constants the decision depends on.
type Gate struct {
	// LoginPath serves both the login form and the consent form.
	LoginPath string
	// RootPath is the application entry point.
	RootPath string
	// CallbackParam names the query parameter carrying the original path.
	CallbackParam string
	// Excluded lists path prefixes the gate never guards. A prefix ending in
	// "/" matches the whole subtree, any other prefix must match exactly.
	Excluded []string
}

// New returns a gate with the portal's routes.
func New() *Gate {
	return &Gate{
		LoginPath:     "/login",
		RootPath:      "/",
		CallbackParam: "callbackUrl",
		Excluded:      []string{"/api/", "/static/", "/favicon.ico", "/healthz", "/metrics"},
	}
}

// Guards reports whether requests to path go through Evaluate.
func (g *Gate) Guards(path string) bool {
	for _, prefix := range g.Excluded {
		if strings.HasSuffix(prefix, "/") {
			if strings.HasPrefix(path, prefix) || path == strings.TrimSuffix(prefix, "/") {
				return false
			}
			continue
		}
		if path == prefix {
			return false
		}
	}
	return true
}

// Evaluate applies the transition table:
//
//	path        | Unauthenticated          | NoConsent       | Consented
//	login path  | allow (login form)       | allow (consent) | redirect root
//	other       | redirect login+callback  | redirect login  | allow
func (g *Gate) Evaluate(state State, path string) Decision {
	if path == g.LoginPath {
		if state == AuthenticatedConsented {
			return Decision{Action: Redirect, Location: g.RootPath}
		}
		return Decision{Action: Allow}
	}

	switch state {
	case AuthenticatedConsented:
		return Decision{Action: Allow}
	case AuthenticatedNoConsent:
		return Decision{Action: Redirect, Location: g.LoginPath}
	default:
		return Decision{Action: Redirect, Location: g.loginWithCallback(path)}
	}
}

func (g *Gate) loginWithCallback(path string) string {
	return g.LoginPath + "?" + g.CallbackParam + "=" + escapeComponent(path)
}

// componentUnescaper undoes the parts of url.QueryEscape that differ from
// browser component encoding: spaces become %20 and !*'() stay literal. A
// literal plus is already %2B at this point.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// View returns the page the login path renders for a state that is allowed
// to see it.
func (g *Gate) View(state State) string {
	if state == AuthenticatedNoConsent {
		return models.ViewConsent
	}
	return models.ViewLogin
}
