package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

// FamilyWriteRepository handles family_links write operations.
type FamilyWriteRepository struct {
	db *sqlx.DB
}

func NewFamilyWriteRepository(db *sqlx.DB) *FamilyWriteRepository {
	return &FamilyWriteRepository{db: db}
}

// Save inserts the directed edge (userID -> familyID). The composite
// unique constraint rejects duplicate edges at the storage level.
func (r *FamilyWriteRepository) Save(ctx context.Context, userID, familyID uuid.UUID) error {
	const query = `
		INSERT INTO family_links (user_id, family_id, created_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{userID, familyID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// FamilyReadRepository handles family_links read operations.
type FamilyReadRepository struct {
	db *sqlx.DB
}

func NewFamilyReadRepository(db *sqlx.DB) *FamilyReadRepository {
	return &FamilyReadRepository{db: db}
}

// Exists reports whether the edge (userID -> familyID) is present.
func (r *FamilyReadRepository) Exists(ctx context.Context, userID, familyID uuid.UUID) (bool, error) {
	const query = `
		SELECT COUNT(*) FROM family_links
		WHERE user_id = $1 AND family_id = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, familyID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, familyID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LinkedBy returns the accounts that linked themselves to userID.
// This set both feeds the dashboard "Linked By" list and receives the
// share copies when userID adds a record.
func (r *FamilyReadRepository) LinkedBy(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error) {
	const query = `
		SELECT u.user_id, u.username
		FROM users u
		JOIN family_links f ON u.user_id = f.user_id
		WHERE f.family_id = $1
		ORDER BY u.username
	`

	var members []models.FamilyMember
	err := r.db.SelectContext(ctx, &members, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(members),
		"error", err,
	)

	return members, err
}

// Members returns the accounts userID linked themselves to.
func (r *FamilyReadRepository) Members(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error) {
	const query = `
		SELECT u.user_id, u.username
		FROM users u
		JOIN family_links f ON u.user_id = f.family_id
		WHERE f.user_id = $1
		ORDER BY u.username
	`

	var members []models.FamilyMember
	err := r.db.SelectContext(ctx, &members, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(members),
		"error", err,
	)

	return members, err
}
