package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/store"
	"github.com/MKhiriev/mentem-portal/internal/utils"
	"github.com/MKhiriev/mentem-portal/internal/validators"
	"github.com/MKhiriev/mentem-portal/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt digests; sessions are HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewPortalValidator(),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new patient account.
//
// The email is normalised to lower case and checked for an existing account
// before anything is written. Returns:
//   - ErrInvalidDataProvided (wrapping the validator error) for a bad form.
//   - store.ErrEmailAlreadyExists if the email is taken, also when a
//     concurrent signup wins the race on the unique index.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Msg("invalid signup data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Signup").Msg("email lookup failed")
		return models.User{}, fmt.Errorf("email lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user := req.ToUser()
	user.UserID = a.ids.Generate()
	user.PasswordHash = hash

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// VerifyCredentials authenticates an existing user.
//
// Malformed input, an unknown email and a wrong password all return
// ErrLoginFailed. Only storage failures surface as a different error.
func (a *authService) VerifyCredentials(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.VerifyCredentials").Msg("invalid credentials format")
		return models.Identity{}, ErrLoginFailed
	}

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Identity{}, ErrLoginFailed
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyCredentials").Msg("user search by email failed")
		return models.Identity{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(user.PasswordHash, creds.Password) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.Identity{}, ErrLoginFailed
	}

	return user.Identity(), nil
}

// IssueToken signs a JWT carrying identity. The token is signed with the
// configured key, carries the configured issuer and expires after
// tokenDuration.
func (a *authService) IssueToken(ctx context.Context, identity models.Identity) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) RefreshToken(ctx context.Context, userID string) (models.SessionToken, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.RefreshToken").Msg("user lookup failed")
		return models.SessionToken{}, fmt.Errorf("refreshing token: %w", err)
	}

	return a.IssueToken(ctx, user.Identity())
}

// ParseToken validates a raw JWT. Any failure (expired, wrong issuer or
// algorithm, bad signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.SessionToken{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
