package repository

import (
	"context"
	"database/sql"
	"errors"
)

// EntityRepo handles identities.
type EntityRepo struct {
	db *sql.DB
}

func NewEntityRepo(db *sql.DB) *EntityRepo { return &EntityRepo{db: db} }

func (r *EntityRepo) Upsert(ctx context.Context, e Entity) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO entities(id, name, type, role, status, last_seen_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 type=excluded.type,
	 role=excluded.role,
	 status=excluded.status,
	 last_seen_at=excluded.last_seen_at;
	`, e.ID, e.Name, e.Type, e.Role, e.Status, timeOrNow(e.LastSeenAt))
	return err
}

func (r *EntityRepo) List(ctx context.Context) ([]Entity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type, role, status, last_seen_at FROM entities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get returns nil, nil when the entity does not exist.
func (r *EntityRepo) Get(ctx context.Context, id string) (*Entity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, type, role, status, last_seen_at FROM entities WHERE id = ?`, id)
	e, err := scanEntity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// UpdateStatus reports whether a row was changed.
func (r *EntityRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE entities SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanEntity(row scanner) (Entity, error) {
	var e Entity
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.Role, &e.Status, &e.LastSeenAt)
	return e, err
}
