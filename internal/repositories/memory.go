package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

// MemoryWriteRepository handles user_data write operations.
// When a transaction is present in the context it is used as the
// executor, so the primary insert and the family-share inserts of one
// request commit or roll back together.
type MemoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMemoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MemoryWriteRepository {
	return &MemoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *MemoryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts one record row and returns its generated id.
func (r *MemoryWriteRepository) Save(ctx context.Context, rec *models.MemoryDB) (int64, error) {
	const query = `
		INSERT INTO user_data (user_id, data_type, title, content, date, time, voice_note, file_data, file_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id
	`
	args := []any{rec.UserID, rec.DataType, rec.Title, rec.Content, rec.Date, rec.Time, rec.VoiceNote, rec.FileData, rec.FileName}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{rec.UserID, rec.DataType, rec.Title},
		"result", id,
		"error", err,
	)

	return id, err
}

// Delete removes a record by id, scoped to its owner so one account
// cannot delete another's rows. Returns false when no row matched, so a
// repeated delete of the same id is a reported no-op rather than an error.
func (r *MemoryWriteRepository) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	const query = `DELETE FROM user_data WHERE user_id = $1 AND id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{userID, id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteAllByUser removes every record owned by userID and returns the
// number of rows removed. Other owners' rows are untouched.
func (r *MemoryWriteRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM user_data WHERE user_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// MemoryReadRepository handles user_data read operations.
type MemoryReadRepository struct {
	db *sqlx.DB
}

func NewMemoryReadRepository(db *sqlx.DB) *MemoryReadRepository {
	return &MemoryReadRepository{db: db}
}

// ListByUser returns all records for an owner, most recent insertion
// first. A non-nil dataType narrows the listing to one record kind.
func (r *MemoryReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, dataType *models.MemoryType) ([]models.MemoryDB, error) {
	const query = `
		SELECT id, user_id, data_type, title, content, date, time, voice_note, file_data, file_name, created_at
		FROM user_data
		WHERE user_id = $1
		  AND ($2::VARCHAR IS NULL OR data_type = $2)
		ORDER BY id DESC
	`

	var records []models.MemoryDB
	err := r.db.SelectContext(ctx, &records, query, userID, dataType)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, dataType},
		"result", len(records),
		"error", err,
	)

	return records, err
}

// Exists reports whether a row already matches the exact 6-tuple of
// owner, type, title, content, date and time. Attachments and ids are
// ignored. This is the soft duplicate gate of the add flow, not a
// storage-level uniqueness guarantee.
func (r *MemoryReadRepository) Exists(ctx context.Context, userID uuid.UUID, dataType models.MemoryType, title, content string, date *time.Time, clock *string) (bool, error) {
	const query = `
		SELECT COUNT(*)
		FROM user_data
		WHERE user_id = $1 AND data_type = $2 AND title = $3 AND content = $4
		  AND date IS NOT DISTINCT FROM $5
		  AND time IS NOT DISTINCT FROM $6
	`
	args := []any{userID, dataType, title, content, date, clock}

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, dataType, title},
		"result", count,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
