package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskdeck/backend/domain"
	tokens "github.com/taskdeck/backend/internal/auth"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func New(users repository.UserRepository, secret []byte, tokenTTL time.Duration, logger *zap.Logger) *UseCase {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register stores a new account with a bcrypt hash of the password.
func (uc *UseCase) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", domain.NewError(domain.ErrCodeInvalid, "email and password required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "registration failed", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeConflict) {
			return "", err
		}
		return "", domain.WrapError(domain.ErrCodeInternal, "registration failed", err)
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return user.ID, nil
}

// Login verifies credentials and mints a signed bearer token. An unknown
// email and a wrong password produce the same error so account existence
// is never revealed.
func (uc *UseCase) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", domain.NewError(domain.ErrCodeInvalid, "email and password required")
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.WrapError(domain.ErrCodeInternal, "login failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := tokens.GenerateToken(user.ID, uc.secret, uc.tokenTTL)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "login failed", err)
	}
	return token, nil
}

// CurrentUser resolves the authenticated account for GET /auth/me.
func (uc *UseCase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}
