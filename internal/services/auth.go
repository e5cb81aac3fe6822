package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyCredentials   = errors.New("username and password are required")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// SessionWriter stores and revokes server-side sessions.
type SessionWriter interface {
	Save(ctx context.Context, userID uuid.UUID, token string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	jwt        JWTGenerator
	sessions   SessionWriter
	bcryptCost int
}

// NewAuthService creates a new AuthService instance. cost is the bcrypt
// cost factor; values below bcrypt.MinCost fall back to the default.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, sessions SessionWriter, cost int) *AuthService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		reader:     reader,
		writer:     writer,
		jwt:        jwt,
		sessions:   sessions,
		bcryptCost: cost,
	}
}

// Register creates a new user with a salted password hash.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user, opens a server-side session and returns a
// JWT token. Unknown-user and wrong-password yield distinct sentinels
// here; the login handler collapses both into one external message.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if err := svc.sessions.Save(ctx, user.UserID, token); err != nil {
		logger.Log.Errorw("failed to open session", "user_id", user.UserID, "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the user's server-side session. Tokens issued before
// the logout stop working even if their exp has not passed.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := svc.sessions.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to close session", "user_id", userID, "err", err)
		return err
	}
	return nil
}
