package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/config"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/repository"
	"github.com/spec-kit/feedback-service/internal/session"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// AuthService validates credentials against the seed credential table
// and tracks the current session user. Wrong credentials are a normal
// negative result (AUTHENTICATION_FAILED); only an unreachable backing
// store produces a harder failure (STORAGE_UNAVAILABLE).
type AuthService struct {
	users    repository.UserRepository
	creds    repository.CredentialRepository
	sessions session.Store
	tokenMgr *auth.TokenManager
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	CredentialRepo repository.CredentialRepository
	SessionStore   session.Store
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:    deps.UserRepo,
		creds:    deps.CredentialRepo,
		sessions: deps.SessionStore,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// Authenticate checks the email/password pair, opens the session and
// issues a bearer token on success.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	cred, err := s.creds.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewAuthenticationFailed()
		}
		return nil, "", time.Time{}, apperrors.NewStorageUnavailable(err)
	}

	if err := auth.ComparePassword(cred.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewAuthenticationFailed()
	}

	user, err := s.users.GetByID(ctx, cred.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// credential without a directory entry is a seed defect
			return nil, "", time.Time{}, apperrors.NewAuthenticationFailed()
		}
		return nil, "", time.Time{}, apperrors.NewStorageUnavailable(err)
	}

	if err := s.sessions.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, "", time.Time{}, apperrors.NewStorageUnavailable(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// CurrentUser returns the session's stored user, or nil when no
// session is open.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	if userID == "" {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageUnavailable(err)
	}
	return user, nil
}

// SetCurrentUser records the given user as the session identity.
func (s *AuthService) SetCurrentUser(ctx context.Context, user *domain.User) error {
	if err := s.sessions.SetCurrentUser(ctx, user.ID); err != nil {
		return apperrors.NewStorageUnavailable(err)
	}
	return nil
}

// ClearSession removes any persisted identity.
func (s *AuthService) ClearSession(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return apperrors.NewStorageUnavailable(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
