package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

// authService is the concrete implementation of AuthService.
//
// Access tokens are HS256 JWTs carrying the user id and role. Refresh tokens
// are random UUIDs; only their keyed hash is stored, and each one can be
// exchanged once.
type authService struct {
	userRepository           store.UserRepository
	refreshSessionRepository store.RefreshSessionRepository

	// hasher derives the stored hash of a refresh token. It is keyed with the
	// token sign key, so a leaked repository does not yield usable tokens.
	hasher *utils.Hasher
	ids    *utils.UUIDGenerator

	tokenSignKey         string
	tokenIssuer          string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the backend auth settings.
func NewAuthService(users store.UserRepository, sessions store.RefreshSessionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:           users,
		refreshSessionRepository: sessions,
		hasher:                   utils.NewHasher(cfg.TokenSignKey),
		ids:                      utils.NewUUIDGenerator(),
		tokenSignKey:             cfg.TokenSignKey,
		tokenIssuer:              cfg.TokenIssuer,
		accessTokenDuration:      cfg.AccessTokenDuration,
		refreshTokenDuration:     cfg.RefreshTokenDuration,
		now:                      time.Now,
		logger:                   logger,
	}
}

// RegisterUser stores user with the bcrypt hash of password.
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn checks credentials and issues a new token pair.
//
// Returns ErrInvalidDataProvided for empty credentials, a wrapped
// store.ErrNoUserWasFound for an unknown login and ErrWrongPassword when the
// password does not match.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResult, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.SignInResult{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.SignInResult{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(credentials.Password)); err != nil {
		log.Err(err).Int64("id", user.UserID).Str("login", user.Login).Msg("wrong password")
		return models.SignInResult{}, ErrWrongPassword
	}

	pair, err := a.issueTokens(ctx, user)
	if err != nil {
		return models.SignInResult{}, err
	}

	return models.SignInResult{TokenPair: pair, User: user}, nil
}

// Refresh exchanges refreshToken for a new pair. The old refresh token is
// consumed whether or not the exchange succeeds.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}

	session, err := a.refreshSessionRepository.TakeRefreshSession(ctx, a.hasher.HashString(refreshToken))
	if err != nil {
		if errors.Is(err, store.ErrRefreshSessionNotFound) {
			log.Warn().Msg("unknown or reused refresh token")
			return models.TokenPair{}, ErrRefreshTokenInvalid
		}
		return models.TokenPair{}, fmt.Errorf("error taking refresh session: %w", err)
	}

	if session.Expired(a.now()) {
		log.Warn().Int64("id", session.UserID).Msg("expired refresh token")
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Int64("id", session.UserID).Msg("refresh token owner not found")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshTokenInvalid, err)
	}

	return a.issueTokens(ctx, user)
}

// SignOut revokes refreshToken. Unknown tokens are ignored.
func (a *authService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	_, err := a.refreshSessionRepository.TakeRefreshSession(ctx, a.hasher.HashString(refreshToken))
	if err != nil && !errors.Is(err, store.ErrRefreshSessionNotFound) {
		return fmt.Errorf("error revoking refresh session: %w", err)
	}

	return nil
}

// ParseToken validates an access token. Every validation failure is reported
// as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (a *authService) issueTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh := a.ids.Generate()
	session := models.RefreshSession{
		TokenHash: a.hasher.HashString(refresh),
		UserID:    user.UserID,
		ExpiresAt: a.now().Add(a.refreshTokenDuration),
	}
	if err = a.refreshSessionRepository.SaveRefreshSession(ctx, session); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access.SignedString, RefreshToken: refresh}, nil
}
