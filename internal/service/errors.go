package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrLoginFailed is returned for every credential mismatch so callers
	// can not tell an unknown email from a wrong password.
	ErrLoginFailed = errors.New("login failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// client side
	ErrSendInFlight         = errors.New("a message is already being sent")
	ErrNoPendingTurn        = errors.New("no pending turn with this id")
	ErrEmptyReply           = errors.New("empty reply from assistant")
	ErrReadOnlyConversation = errors.New("conversation is read-only")
	ErrConsentRequired      = errors.New("consent is required")
)
