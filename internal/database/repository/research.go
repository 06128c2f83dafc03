package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// ResearchNodeRepo handles research nodes.
type ResearchNodeRepo struct {
	db DBTX
}

func NewResearchNodeRepo(db *sql.DB) *ResearchNodeRepo { return &ResearchNodeRepo{db: db} }

// WithTx returns a copy of the repo that runs its statements in tx.
func (r *ResearchNodeRepo) WithTx(tx *sql.Tx) *ResearchNodeRepo { return &ResearchNodeRepo{db: tx} }

func (r *ResearchNodeRepo) Upsert(ctx context.Context, n ResearchNode) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO research_nodes(id, title, category, confidence, sources, content, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 category=excluded.category,
	 confidence=excluded.confidence,
	 sources=excluded.sources,
	 content=excluded.content,
	 updated_at=excluded.updated_at;
	`, n.ID, n.Title, n.Category, n.Confidence, n.Sources, n.Content, timeOrNow(n.UpdatedAt))
	return err
}

func (r *ResearchNodeRepo) List(ctx context.Context) ([]ResearchNode, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, category, confidence, sources, content, updated_at FROM research_nodes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ResearchNode
	for rows.Next() {
		var n ResearchNode
		if err := rows.Scan(&n.ID, &n.Title, &n.Category, &n.Confidence, &n.Sources, &n.Content, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Get returns nil, nil when the node does not exist.
func (r *ResearchNodeRepo) Get(ctx context.Context, id string) (*ResearchNode, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, category, confidence, sources, content, updated_at FROM research_nodes WHERE id = ?`, id)
	var n ResearchNode
	if err := row.Scan(&n.ID, &n.Title, &n.Category, &n.Confidence, &n.Sources, &n.Content, &n.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// IncrementSources bumps the source counter and reports whether the node exists.
func (r *ResearchNodeRepo) IncrementSources(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE research_nodes SET sources = sources + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// CitationRepo handles citations.
type CitationRepo struct {
	db DBTX
}

func NewCitationRepo(db *sql.DB) *CitationRepo { return &CitationRepo{db: db} }

// WithTx returns a copy of the repo that runs its statements in tx.
func (r *CitationRepo) WithTx(tx *sql.Tx) *CitationRepo { return &CitationRepo{db: tx} }

func (r *CitationRepo) Upsert(ctx context.Context, c Citation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO citations(id, node_id, title, type, relevance, url, tags, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 node_id=excluded.node_id,
	 title=excluded.title,
	 type=excluded.type,
	 relevance=excluded.relevance,
	 url=excluded.url,
	 tags=excluded.tags;
	`, c.ID, c.NodeID, c.Title, c.Type, c.Relevance, c.URL, joinTags(c.Tags), timeOrNow(c.CreatedAt))
	return err
}

func (r *CitationRepo) List(ctx context.Context) ([]Citation, error) {
	return r.query(ctx, `SELECT id, node_id, title, type, relevance, url, tags, created_at FROM citations ORDER BY id`)
}

func (r *CitationRepo) ByNode(ctx context.Context, nodeID string) ([]Citation, error) {
	return r.query(ctx, `SELECT id, node_id, title, type, relevance, url, tags, created_at FROM citations WHERE node_id = ? ORDER BY id`, nodeID)
}

// Get returns nil, nil when the citation does not exist.
func (r *CitationRepo) Get(ctx context.Context, id string) (*Citation, error) {
	out, err := r.query(ctx, `SELECT id, node_id, title, type, relevance, url, tags, created_at FROM citations WHERE id = ?`, id)
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

func (r *CitationRepo) query(ctx context.Context, q string, args ...any) ([]Citation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Citation
	for rows.Next() {
		var c Citation
		var tags string
		if err := rows.Scan(&c.ID, &c.NodeID, &c.Title, &c.Type, &c.Relevance, &c.URL, &tags, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Tags = splitTags(tags)
		out = append(out, c)
	}
	return out, rows.Err()
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
