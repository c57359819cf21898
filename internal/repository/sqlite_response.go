package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Prokope45/Praestara/internal/db"
	"github.com/Prokope45/Praestara/internal/domain"
)

// SQLiteResponseRepo implements ResponseRepo using a SQLite database.
type SQLiteResponseRepo struct {
	db db.DBTX
}

// NewSQLiteResponseRepo creates a new SQLiteResponseRepo.
func NewSQLiteResponseRepo(conn db.DBTX) *SQLiteResponseRepo {
	return &SQLiteResponseRepo{db: conn}
}

func (r *SQLiteResponseRepo) Create(ctx context.Context, resp *domain.Response) error {
	if err := resp.Validate(); err != nil {
		return fmt.Errorf("validating response: %w", err)
	}
	if resp.SchemaVersion == "" {
		resp.SchemaVersion = "v1"
	}
	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = time.Now().UTC()
	}

	payload, err := marshalPayload(resp.Payload)
	if err != nil {
		return err
	}

	query := `INSERT INTO responses (id, owner_id, kind, schema_version, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		resp.ID,
		resp.OwnerID,
		string(resp.Kind),
		resp.SchemaVersion,
		payload,
		resp.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting response: %w", err)
	}
	return nil
}

func (r *SQLiteResponseRepo) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	query := `SELECT id, owner_id, kind, schema_version, payload, created_at
		FROM responses WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteResponseRepo) LatestByKind(ctx context.Context, ownerID string, kind domain.ResponseKind) (*domain.Response, error) {
	query := `SELECT id, owner_id, kind, schema_version, payload, created_at
		FROM responses WHERE owner_id = ? AND kind = ?
		ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, string(kind)))
}

func (r *SQLiteResponseRepo) ListByOwner(ctx context.Context, ownerID string, kind domain.ResponseKind, limit int) ([]*domain.Response, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, owner_id, kind, schema_version, payload, created_at
		FROM responses WHERE owner_id = ? AND kind = ?
		ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, ownerID, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("listing responses: %w", err)
	}
	defer rows.Close()

	var out []*domain.Response
	for rows.Next() {
		resp, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating responses: %w", err)
	}
	return out, nil
}

func (r *SQLiteResponseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM responses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting response: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("response %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteResponseRepo) scanOne(row *sql.Row) (*domain.Response, error) {
	var (
		resp       domain.Response
		kind       string
		rawPayload string
		createdAt  string
	)
	err := row.Scan(&resp.ID, &resp.OwnerID, &kind, &resp.SchemaVersion, &rawPayload, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("response: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning response: %w", err)
	}
	return r.hydrate(&resp, kind, rawPayload, createdAt)
}

func (r *SQLiteResponseRepo) scanRow(rows *sql.Rows) (*domain.Response, error) {
	var (
		resp       domain.Response
		kind       string
		rawPayload string
		createdAt  string
	)
	if err := rows.Scan(&resp.ID, &resp.OwnerID, &kind, &resp.SchemaVersion, &rawPayload, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning response: %w", err)
	}
	return r.hydrate(&resp, kind, rawPayload, createdAt)
}

func (r *SQLiteResponseRepo) hydrate(resp *domain.Response, kind, rawPayload, createdAt string) (*domain.Response, error) {
	resp.Kind = domain.ResponseKind(kind)

	payload, err := unmarshalPayload(rawPayload)
	if err != nil {
		return nil, err
	}
	resp.Payload = payload

	t, err := parseStoredTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	resp.CreatedAt = t
	return resp, nil
}
