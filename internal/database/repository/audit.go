package repository

import (
	"context"
	"database/sql"
)

// ComponentChangeRepo handles execution audit events.
type ComponentChangeRepo struct {
	db *sql.DB
}

func NewComponentChangeRepo(db *sql.DB) *ComponentChangeRepo {
	return &ComponentChangeRepo{db: db}
}

func (r *ComponentChangeRepo) Upsert(ctx context.Context, c ComponentChange) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO component_changes(id, component_id, previous_version, new_version, change_type,
	 materiality, rationale, trigger_type, executor_role, changed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 component_id=excluded.component_id,
	 previous_version=excluded.previous_version,
	 new_version=excluded.new_version,
	 change_type=excluded.change_type,
	 materiality=excluded.materiality,
	 rationale=excluded.rationale,
	 trigger_type=excluded.trigger_type,
	 executor_role=excluded.executor_role,
	 changed_at=excluded.changed_at;
	`, c.ID, c.ComponentID, c.PreviousVersion, c.NewVersion, c.ChangeType,
		c.Materiality, c.Rationale, c.TriggerType, c.ExecutorRole, timeOrNow(c.ChangedAt))
	return err
}

func (r *ComponentChangeRepo) List(ctx context.Context) ([]ComponentChange, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, component_id, previous_version, new_version, change_type,
	 materiality, rationale, trigger_type, executor_role, changed_at
	FROM component_changes ORDER BY changed_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ComponentChange
	for rows.Next() {
		var c ComponentChange
		if err := rows.Scan(&c.ID, &c.ComponentID, &c.PreviousVersion, &c.NewVersion, &c.ChangeType,
			&c.Materiality, &c.Rationale, &c.TriggerType, &c.ExecutorRole, &c.ChangedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SOPVersionRepo handles SOP version history.
type SOPVersionRepo struct {
	db *sql.DB
}

func NewSOPVersionRepo(db *sql.DB) *SOPVersionRepo { return &SOPVersionRepo{db: db} }

func (r *SOPVersionRepo) Upsert(ctx context.Context, v SOPVersion) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sop_versions(id, sop_id, version, execution_id, change_type, approval_status, published_date, notes)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 sop_id=excluded.sop_id,
	 version=excluded.version,
	 execution_id=excluded.execution_id,
	 change_type=excluded.change_type,
	 approval_status=excluded.approval_status,
	 published_date=excluded.published_date,
	 notes=excluded.notes;
	`, v.ID, v.SOPID, v.Version, v.ExecutionID, v.ChangeType, v.ApprovalStatus, timeOrNow(v.PublishedDate), v.Notes)
	return err
}

func (r *SOPVersionRepo) List(ctx context.Context) ([]SOPVersion, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, sop_id, version, execution_id, change_type, approval_status, published_date, notes
	FROM sop_versions ORDER BY published_date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SOPVersion
	for rows.Next() {
		var v SOPVersion
		if err := rows.Scan(&v.ID, &v.SOPID, &v.Version, &v.ExecutionID, &v.ChangeType,
			&v.ApprovalStatus, &v.PublishedDate, &v.Notes); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
