package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when no
// such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its generated id. The unique
// constraint on username is the hard uniqueness guarantee; callers
// pre-check for a friendlier error.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING user_id
	`

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, username, passwordHash)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", userID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
