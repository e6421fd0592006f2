// Package http is the portal's HTTP transport.
//
// Page routes (/login and /) return JSON view models and sit behind the
// consent gate, which redirects with 307 according to the caller's session
// state. API routes under /api are never redirected; they use requireSession
// and requireConsent, which answer 401 and 403 instead. Tracing, access
// logging, request metrics and compression are applied here before requests
// reach the service layer.
package http
