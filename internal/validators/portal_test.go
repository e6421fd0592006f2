// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/mentem-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@example.com",
		Password:          "longenough",
		Gender:            "female",
		DOB:               "1990-01-01",
		ZipCode:           "10001",
		ServicePreference: "virtual",
		EmergencyPhone:    "+14155550100",
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewPortalValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("credentials pointer", func(t *testing.T) {
		c := &models.Credentials{Email: "a@b.co", Password: "123456"}
		require.NoError(t, v.Validate(ctx, c))
	})

	t.Run("signup pointer", func(t *testing.T) {
		s := validSignup()
		require.NoError(t, v.Validate(ctx, &s))
	})

	t.Run("unknown field", func(t *testing.T) {
		c := models.Credentials{Email: "a@b.co", Password: "123456"}
		require.ErrorIs(t, v.Validate(ctx, c, "nickname"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewPortalValidator()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Email: "jane@example.com", Password: "123456"}},
		{name: "password exactly six", creds: models.Credentials{Email: "jane@example.com", Password: "abcdef"}},
		{name: "password too short", creds: models.Credentials{Email: "jane@example.com", Password: "abcde"}, wantErr: ErrPasswordTooShort},
		{name: "three runes in six bytes", creds: models.Credentials{Email: "jane@example.com", Password: "äöü"}, wantErr: ErrPasswordTooShort},
		{name: "six multibyte runes", creds: models.Credentials{Email: "jane@example.com", Password: "пароль"}},
		{name: "empty email", creds: models.Credentials{Password: "123456"}, wantErr: ErrInvalidEmail},
		{name: "not an email", creds: models.Credentials{Email: "jane", Password: "123456"}, wantErr: ErrInvalidEmail},
		{name: "display name form", creds: models.Credentials{Email: "Jane <jane@example.com>", Password: "123456"}, wantErr: ErrInvalidEmail},
		{name: "surrounding spaces", creds: models.Credentials{Email: " jane@example.com", Password: "123456"}, wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

func TestValidate_Signup(t *testing.T) {
	v := NewPortalValidator()

	tests := []struct {
		name    string
		mutate  func(s *models.SignupRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SignupRequest) {}},
		{name: "optional fields empty", mutate: func(s *models.SignupRequest) {
			s.LastName, s.EmergencyPhone, s.EmergencyName, s.InsuranceCompany = "", "", "", ""
		}},
		{name: "missing first name", mutate: func(s *models.SignupRequest) { s.FirstName = " " }, wantErr: ErrRequiredFieldMissing},
		{name: "missing gender", mutate: func(s *models.SignupRequest) { s.Gender = "" }, wantErr: ErrRequiredFieldMissing},
		{name: "missing dob", mutate: func(s *models.SignupRequest) { s.DOB = "" }, wantErr: ErrRequiredFieldMissing},
		{name: "missing zip", mutate: func(s *models.SignupRequest) { s.ZipCode = "" }, wantErr: ErrRequiredFieldMissing},
		{name: "missing service preference", mutate: func(s *models.SignupRequest) { s.ServicePreference = "" }, wantErr: ErrRequiredFieldMissing},
		{name: "bad email", mutate: func(s *models.SignupRequest) { s.Email = "nope" }, wantErr: ErrInvalidEmail},
		{name: "seven char password", mutate: func(s *models.SignupRequest) { s.Password = "1234567" }, wantErr: ErrPasswordTooShort},
		{name: "seven runes in thirteen bytes", mutate: func(s *models.SignupRequest) { s.Password = "секрет1" }, wantErr: ErrPasswordTooShort},
		{name: "phone with leading zero", mutate: func(s *models.SignupRequest) { s.EmergencyPhone = "0123456" }, wantErr: ErrInvalidEmergencyPhone},
		{name: "phone with letters", mutate: func(s *models.SignupRequest) { s.EmergencyPhone = "+1-415-CALL" }, wantErr: ErrInvalidEmergencyPhone},
		{name: "phone too long", mutate: func(s *models.SignupRequest) { s.EmergencyPhone = "+1234567890123456" }, wantErr: ErrInvalidEmergencyPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSignup()
			tt.mutate(&s)

			err := v.Validate(context.Background(), s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Signup_FieldScoping(t *testing.T) {
	v := NewPortalValidator()
	s := validSignup()
	s.Gender = ""

	// gender is not in scope, so the missing value is ignored
	assert.NoError(t, v.Validate(context.Background(), s, FieldEmail, FieldSignupPassword))
}

// ---------------------------------------------------------------------------
// Chat
// ---------------------------------------------------------------------------

func TestValidate_SendMessage(t *testing.T) {
	v := NewPortalValidator()
	valid := models.SendMessageRequest{UserID: "u1", SessionID: "s1", Message: "hello"}

	tests := []struct {
		name    string
		mutate  func(r *models.SendMessageRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SendMessageRequest) {}},
		{name: "empty user", mutate: func(r *models.SendMessageRequest) { r.UserID = "" }, wantErr: ErrInvalidUserID},
		{name: "empty session", mutate: func(r *models.SendMessageRequest) { r.SessionID = "" }, wantErr: ErrInvalidSessionID},
		{name: "whitespace message", mutate: func(r *models.SendMessageRequest) { r.Message = " \n\t" }, wantErr: ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := v.Validate(context.Background(), &r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_History(t *testing.T) {
	v := NewPortalValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.HistoryRequest{UserID: "u1", SessionID: "s1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.HistoryRequest{SessionID: "s1"}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.HistoryRequest{UserID: "u1"}), ErrInvalidSessionID)
	assert.NoError(t, v.Validate(ctx, models.HistoryRequest{UserID: "u1"}, FieldUserID))
}
