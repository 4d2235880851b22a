package domain

import "time"

// Audit action tags. Free-form strings by contract, but every producer in
// this codebase uses one of these.
const (
	ActionUpdateRole = "UPDATE_ROLE"
	ActionDeleteUser = "DELETE_USER"
	ActionCreateUser = "CREATE_USER"
)

// AuditEntry is an immutable record of an administrative action. Entries are
// inserted once and only ever read back for display.
type AuditEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	ActorID   string         `json:"actor_id"`
	TargetID  string         `json:"target_id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
}
