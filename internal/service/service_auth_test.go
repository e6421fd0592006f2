package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/mock"
	"github.com/MKhiriev/mentem-portal/internal/store"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "test-issuer",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, testAppConfig, logger.Nop()).(*authService), repo
}

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "Jane@Example.com ",
		Password:          "password123",
		Gender:            "female",
		DOB:               "1990-01-01",
		ZipCode:           "10001",
		ServicePreference: "virtual",
		EmergencyPhone:    "+15551234567",
	}
}

func storedUser(t *testing.T, password string, consent bool) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	return models.User{
		UserID:       "user-1",
		Email:        "jane@example.com",
		PasswordHash: hash,
		FirstName:    "Jane",
		LastName:     "Doe",
		ConsentGiven: consent,
	}
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "jane@example.com", u.Email)
		assert.NotEmpty(t, u.UserID)
		assert.NotEqual(t, "password123", u.PasswordHash)
		assert.True(t, utils.VerifyPassword(u.PasswordHash, "password123"))
		assert.False(t, u.ConsentGiven)
		assert.Equal(t, "+15551234567", u.EmergencyPhone)
		return u, nil
	})

	user, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.DisplayName())
}

func TestAuthService_Signup_DuplicateEmailWritesNothing(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{UserID: "existing"}, nil)
	// no CreateUser expectation: gomock fails the test on an unexpected call

	_, err := svc.Signup(ctx, validSignup())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Signup_RaceOnUniqueIndex(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(ctx, validSignup())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Signup_InvalidForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SignupRequest)
	}{
		{name: "short password", mutate: func(r *models.SignupRequest) { r.Password = "1234567" }},
		{name: "bad email", mutate: func(r *models.SignupRequest) { r.Email = "not-an-email" }},
		{name: "missing first name", mutate: func(r *models.SignupRequest) { r.FirstName = "" }},
		{name: "missing zip", mutate: func(r *models.SignupRequest) { r.ZipCode = " " }},
		{name: "bad emergency phone", mutate: func(r *models.SignupRequest) { r.EmergencyPhone = "0123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)
			req := validSignup()
			tt.mutate(&req)

			_, err := svc.Signup(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Signup_LookupFailure(t *testing.T) {
	svc, repo := newTestAuthService(t)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrStorageUnavailable)

	_, err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── VerifyCredentials ────────────────────────────────────────────────────────

func TestAuthService_VerifyCredentials_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := storedUser(t, "secret1", true)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

	identity, err := svc.VerifyCredentials(context.Background(), models.Credentials{Email: "JANE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "user-1", Email: "jane@example.com", Name: "Jane Doe", ConsentGiven: true}, identity)
}

func TestAuthService_VerifyCredentials_UniformFailure(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
		setup func(repo *mock.MockUserRepository)
	}{
		{
			name:  "malformed email",
			creds: models.Credentials{Email: "jane", Password: "secret1"},
		},
		{
			name:  "short password",
			creds: models.Credentials{Email: "jane@example.com", Password: "12345"},
		},
		{
			name:  "unknown email",
			creds: models.Credentials{Email: "nobody@example.com", Password: "secret1"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)
			},
		},
		{
			name:  "wrong password",
			creds: models.Credentials{Email: "jane@example.com", Password: "wrong-password"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(storedUser(t, "secret1", false), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			_, err := svc.VerifyCredentials(context.Background(), tt.creds)
			assert.Equal(t, ErrLoginFailed, err)
		})
	}
}

func TestAuthService_VerifyCredentials_StorageError(t *testing.T) {
	svc, repo := newTestAuthService(t)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrStorageUnavailable)

	_, err := svc.VerifyCredentials(context.Background(), models.Credentials{Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrLoginFailed)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_IssueAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	identity := models.Identity{ID: "user-1", Email: "jane@example.com", Name: "Jane Doe"}

	token, err := svc.IssueToken(ctx, identity)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, identity, parsed.Claims.Identity())
	assert.Equal(t, "test-issuer", parsed.Claims.Issuer)
}

func TestAuthService_IssueToken_Failure(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.IssueToken(context.Background(), models.Identity{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	other := NewAuthService(nil, config.App{TokenSignKey: "other-key", TokenIssuer: "test-issuer", TokenDuration: time.Hour}, logger.Nop())
	foreign, err := other.IssueToken(context.Background(), models.Identity{ID: "user-1"})
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.String()} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.Equal(t, ErrTokenIsExpiredOrInvalid, err, raw)
	}
}

func TestAuthService_RefreshToken_ReadsCurrentConsent(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "user-1").Return(storedUser(t, "secret1", true), nil)

	token, err := svc.RefreshToken(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, token.Claims.ConsentGiven)
	assert.Equal(t, "Jane Doe", token.Claims.Name)
}

func TestAuthService_RefreshToken_UnknownUser(t *testing.T) {
	svc, repo := newTestAuthService(t)
	repo.EXPECT().FindUserByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.RefreshToken(context.Background(), "ghost")
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}
