package repository

import "time"

// ResearchNode is a Deep Research Engine topic.
type ResearchNode struct {
	ID         string    `yaml:"id"`
	Title      string    `yaml:"title"`
	Category   string    `yaml:"category"`
	Confidence float64   `yaml:"confidence"`
	Sources    int       `yaml:"sources"`
	Content    string    `yaml:"content"`
	UpdatedAt  time.Time `yaml:"updated_at"`
}

// Citation is a source attached to a research node.
type Citation struct {
	ID        string    `yaml:"id"`
	NodeID    string    `yaml:"node_id"`
	Title     string    `yaml:"title"`
	Type      string    `yaml:"type"`
	Relevance string    `yaml:"relevance"`
	URL       string    `yaml:"url"`
	Tags      []string  `yaml:"tags"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Execution is a governance execution event.
type Execution struct {
	ID         string    `yaml:"id"`
	Type       string    `yaml:"type"`
	Status     string    `yaml:"status"`
	ExecutedAt time.Time `yaml:"executed_at"`
	Initiator  string    `yaml:"initiator"`
	Summary    string    `yaml:"summary"`
}

// Policy is a governance policy.
type Policy struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Level       string `yaml:"level"`
	Enforcement string `yaml:"enforcement"`
	Status      string `yaml:"status"`
}

// Entity is an identity (human, service or bot).
type Entity struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Type       string    `yaml:"type"`
	Role       string    `yaml:"role"`
	Status     string    `yaml:"status"`
	LastSeenAt time.Time `yaml:"last_seen_at"`
}

// ComponentChange is one execution-level audit event.
type ComponentChange struct {
	ID              string    `yaml:"id"`
	ComponentID     string    `yaml:"component_id"`
	PreviousVersion string    `yaml:"previous_version"`
	NewVersion      string    `yaml:"new_version"`
	ChangeType      string    `yaml:"change_type"`
	Materiality     string    `yaml:"materiality"`
	Rationale       string    `yaml:"rationale"`
	TriggerType     string    `yaml:"trigger_type"`
	ExecutorRole    string    `yaml:"executor_role"`
	ChangedAt       time.Time `yaml:"changed_at"`
}

// SOPVersion is one published revision of a standard operating procedure.
type SOPVersion struct {
	ID             string    `yaml:"id"`
	SOPID          string    `yaml:"sop_id"`
	Version        string    `yaml:"version"`
	ExecutionID    string    `yaml:"execution_id"`
	ChangeType     string    `yaml:"change_type"`
	ApprovalStatus string    `yaml:"approval_status"`
	PublishedDate  time.Time `yaml:"published_date"`
	Notes          string    `yaml:"notes"`
}
