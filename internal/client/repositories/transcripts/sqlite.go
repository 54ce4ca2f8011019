package transcripts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/common"
	"github.com/dmitrijs2005/adminconsole/internal/dbx"
)

// ErrRowNotDeleted is the cause inside a ClearError when a record vanished
// between the read and its delete.
var ErrRowNotDeleted = errors.New("record was not deleted")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, ownerID string, rec models.TranscriptRecord) error {
	if !rec.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrorInvalidArgument, rec.Role)
	}
	query := `INSERT INTO transcripts (id, owner_id, role, content, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET owner_id = excluded.owner_id,
				role = excluded.role,
				content = excluded.content,
				created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, ownerID, string(rec.Role), rec.Content, toUnixNano(rec.Timestamp))
	if err != nil {
		return fmt.Errorf("failed to append transcript record %d: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) ReadAll(ctx context.Context, ownerID string) ([]models.TranscriptRecord, error) {
	return readAll(ctx, r.db, ownerID)
}

func readAll(ctx context.Context, db dbx.DBTX, ownerID string) ([]models.TranscriptRecord, error) {
	query := `SELECT id, owner_id, role, content, created_at FROM transcripts WHERE owner_id = ?`
	rows, err := db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	defer rows.Close()

	result := make([]models.TranscriptRecord, 0)
	for rows.Next() {
		var (
			rec     models.TranscriptRecord
			role    string
			created int64
		)
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &role, &rec.Content, &created); err != nil {
			return nil, fmt.Errorf("failed to scan transcript record: %w", err)
		}
		rec.Role = models.ChatRole(role)
		rec.Timestamp = fromUnixNano(created)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transcript: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) ClearAll(ctx context.Context, ownerID string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		records, err := readAll(ctx, tx, ownerID)
		if err != nil {
			return err
		}

		deleted := make([]int64, 0, len(records))
		for _, rec := range records {
			if err := deleteOne(ctx, tx, ownerID, rec.ID); err != nil {
				return &ClearError{OwnerID: ownerID, FailedID: rec.ID, Deleted: deleted, Err: err}
			}
			deleted = append(deleted, rec.ID)
		}
		return nil
	})
}

// deleteOne removes a single record by primary key. owner_id is part of the
// predicate so a record re-owned in the meantime is left alone.
func deleteOne(ctx context.Context, tx dbx.DBTX, ownerID string, id int64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM transcripts WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n != 1 {
		return ErrRowNotDeleted
	}
	return nil
}

// Zero timestamps are stored as 0 so they read back as the zero time.
func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
