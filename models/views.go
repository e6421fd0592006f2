package models

// View names rendered by the page routes.
const (
	ViewLogin   = "login"
	ViewConsent = "consent"
	ViewChat    = "chat"
)

// PageView is the JSON view model returned by the gated page routes.
type PageView struct {
	View      string           `json:"view"`
	User      *Identity        `json:"user,omitempty"`
	SessionID string           `json:"session_id,omitempty"`
	Sessions  []SessionSummary `json:"sessions,omitempty"`

	// CallbackURL is echoed back on the login view so the form can post it.
	CallbackURL string `json:"callbackUrl,omitempty"`
}
