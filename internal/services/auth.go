package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a new user and returns it. The password is stored only
// as a bcrypt hash. Uniqueness of username and email is enforced by the
// store's constraints, so a duplicate fails atomically with ErrUserExists
// and no partial row is left behind.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	id, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("user already exists", "username", username, "email", email)
			return nil, ErrUserExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.UserDB{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}, nil
}

// Login authenticates a user by email and password and returns the user.
// An unregistered email fails with ErrUnknownEmail, a hash mismatch with
// ErrWrongPassword; the two outcomes are deliberately distinguishable.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Infow("login with unknown email", "email", email)
			return nil, ErrUnknownEmail
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("wrong password", "email", email)
		return nil, ErrWrongPassword
	}

	return user, nil
}

// RequireAdmin authorizes post lifecycle operations. Only the user with
// id 1 passes; every other caller, including an anonymous nil user, fails
// closed with ErrForbidden. Callers invoke it on every request; the
// result is never cached.
func RequireAdmin(user *models.UserDB) error {
	if user == nil || user.ID != models.AdminID {
		return ErrForbidden
	}
	return nil
}
