package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail          = errors.New("invalid email")
	ErrPasswordTooShort      = errors.New("password is too short")
	ErrRequiredFieldMissing  = errors.New("required field is missing")
	ErrInvalidEmergencyPhone = errors.New("invalid emergency phone")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidSessionID = errors.New("invalid session ID")
	ErrEmptyMessage     = errors.New("message is required")
)
