package models

// ErrorResponse is the body of every non-2xx API response. The terminal
// client unwraps Error to recover the message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
