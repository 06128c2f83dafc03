package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ExecutionRepo handles governance executions.
type ExecutionRepo struct {
	db *sql.DB
}

func NewExecutionRepo(db *sql.DB) *ExecutionRepo { return &ExecutionRepo{db: db} }

func (r *ExecutionRepo) Upsert(ctx context.Context, e Execution) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO executions(id, type, status, executed_at, initiator, summary)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 type=excluded.type,
	 status=excluded.status,
	 executed_at=excluded.executed_at,
	 initiator=excluded.initiator,
	 summary=excluded.summary;
	`, e.ID, e.Type, e.Status, timeOrNow(e.ExecutedAt), e.Initiator, e.Summary)
	return err
}

func (r *ExecutionRepo) List(ctx context.Context) ([]Execution, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type, status, executed_at, initiator, summary FROM executions ORDER BY executed_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Execution
	for rows.Next() {
		e, err := scanExecution(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get returns nil, nil when the execution does not exist.
func (r *ExecutionRepo) Get(ctx context.Context, id string) (*Execution, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, type, status, executed_at, initiator, summary FROM executions WHERE id = ?`, id)
	e, err := scanExecution(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// UpdateStatus reports whether a row was changed.
func (r *ExecutionRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE executions SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanExecution(row scanner) (Execution, error) {
	var e Execution
	err := row.Scan(&e.ID, &e.Type, &e.Status, &e.ExecutedAt, &e.Initiator, &e.Summary)
	return e, err
}

// PolicyRepo handles policies.
type PolicyRepo struct {
	db *sql.DB
}

func NewPolicyRepo(db *sql.DB) *PolicyRepo { return &PolicyRepo{db: db} }

func (r *PolicyRepo) Upsert(ctx context.Context, p Policy) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO policies(id, name, level, enforcement, status)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 level=excluded.level,
	 enforcement=excluded.enforcement,
	 status=excluded.status;
	`, p.ID, p.Name, p.Level, p.Enforcement, p.Status)
	return err
}

func (r *PolicyRepo) List(ctx context.Context) ([]Policy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, level, enforcement, status FROM policies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Policy
	for rows.Next() {
		var p Policy
		if err := rows.Scan(&p.ID, &p.Name, &p.Level, &p.Enforcement, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
