package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/swatter555/leadercorps/internal/leader"
)

// ErrNotFound is returned when a requested leader record does not exist.
var ErrNotFound = errors.New("leader not found")

// LeaderRepo manages leader save records.
type LeaderRepo interface {
	// Save inserts or replaces a leader record.
	Save(ctx context.Context, rec leader.Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (leader.Record, error)

	// FindByName returns the first record with the given name, or ErrNotFound.
	FindByName(ctx context.Context, name string) (leader.Record, error)

	// List returns all records ordered by name.
	List(ctx context.Context) ([]leader.Record, error)

	// Delete removes a record. Deleting a missing record returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// leaderRepo implements LeaderRepo against the leaders table.
type leaderRepo struct {
	db *sql.DB
}

func (r *leaderRepo) Save(ctx context.Context, rec leader.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal leader record: %w", err)
	}
	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO leaders (id, name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		rec.ID, rec.Name, string(data), now, now)
	if err != nil {
		return fmt.Errorf("save leader %s: %w", rec.ID, err)
	}
	return nil
}

func (r *leaderRepo) Get(ctx context.Context, id string) (leader.Record, error) {
	return r.queryOne(ctx, `SELECT data FROM leaders WHERE id = ?`, id)
}

func (r *leaderRepo) FindByName(ctx context.Context, name string) (leader.Record, error) {
	return r.queryOne(ctx, `SELECT data FROM leaders WHERE name = ? ORDER BY created_at LIMIT 1`, name)
}

func (r *leaderRepo) queryOne(ctx context.Context, query string, arg any) (leader.Record, error) {
	var data string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return leader.Record{}, ErrNotFound
	}
	if err != nil {
		return leader.Record{}, fmt.Errorf("query leader: %w", err)
	}
	return decodeRecord(data)
}

func (r *leaderRepo) List(ctx context.Context) ([]leader.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM leaders ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}
	defer rows.Close()

	var recs []leader.Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan leader row: %w", err)
		}
		rec, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaders: %w", err)
	}
	return recs, nil
}

func (r *leaderRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leaders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete leader %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete leader %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeRecord(data string) (leader.Record, error) {
	var rec leader.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return leader.Record{}, fmt.Errorf("unmarshal leader record: %w", err)
	}
	return rec, nil
}
