package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/mentem-portal/models"
)

const (
	FieldEmail             = "email"
	FieldPassword          = "password"
	FieldSignupPassword    = "signup_password"
	FieldFirstName         = "first_name"
	FieldGender            = "gender"
	FieldDOB               = "dob"
	FieldZipCode           = "zip_code"
	FieldServicePreference = "service_preference"
	FieldEmergencyPhone    = "emergency_phone"
	FieldUserID            = "user_id"
	FieldSessionID         = "session_id"
	FieldMessage           = "message"
)

// Password lengths count characters, not bytes.
const (
	// MinLoginPasswordLength is enforced on login.
	MinLoginPasswordLength = 6
	// MinSignupPasswordLength is enforced when an account is created.
	MinSignupPasswordLength = 8
)

// E.164: optional plus, no leading zero, at most 15 digits.
var emergencyPhonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// PortalValidator validates the request models of the portal: login
// credentials, signup forms and chat requests.
type PortalValidator struct {
}

func NewPortalValidator() Validator {
	return &PortalValidator{}
}

func (v *PortalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.SendMessageRequest:
		return v.validateSendMessage(value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessage(*value, fields...)

	case models.HistoryRequest:
		return v.validateHistory(value, fields...)
	case *models.HistoryRequest:
		return v.validateHistory(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PortalValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(c.Password) < MinLoginPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PortalValidator) validateSignup(s models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldFirstName, FieldEmail, FieldSignupPassword, FieldGender,
			FieldDOB, FieldZipCode, FieldServicePreference, FieldEmergencyPhone,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if err := required(FieldFirstName, s.FirstName); err != nil {
				return err
			}
		case FieldEmail:
			if !isValidEmail(s.Email) {
				return ErrInvalidEmail
			}
		case FieldSignupPassword:
			if utf8.RuneCountInString(s.Password) < MinSignupPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldGender:
			if err := required(FieldGender, s.Gender); err != nil {
				return err
			}
		case FieldDOB:
			if err := required(FieldDOB, s.DOB); err != nil {
				return err
			}
		case FieldZipCode:
			if err := required(FieldZipCode, s.ZipCode); err != nil {
				return err
			}
		case FieldServicePreference:
			if err := required(FieldServicePreference, s.ServicePreference); err != nil {
				return err
			}
		case FieldEmergencyPhone:
			// optional, but must be well-formed when given
			if s.EmergencyPhone != "" && !emergencyPhonePattern.MatchString(s.EmergencyPhone) {
				return ErrInvalidEmergencyPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PortalValidator) validateSendMessage(r models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSessionID, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(r.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldSessionID:
			if strings.TrimSpace(r.SessionID) == "" {
				return ErrInvalidSessionID
			}
		case FieldMessage:
			if strings.TrimSpace(r.Message) == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PortalValidator) validateHistory(r models.HistoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSessionID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(r.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldSessionID:
			if strings.TrimSpace(r.SessionID) == "" {
				return ErrInvalidSessionID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, field)
	}
	return nil
}

// isValidEmail accepts a bare address only; display-name forms such as
// "Jane <jane@example.com>" are rejected.
func isValidEmail(email string) bool {
	if email == "" || strings.TrimSpace(email) != email {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && addr.Name == ""
}
