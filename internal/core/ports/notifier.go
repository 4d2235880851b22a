package ports

import "context"

// Notifier delivers a human-readable alert through one outbound channel.
// Delivery is attempted once; implementations return an error so the caller
// can log it, but the caller must never propagate it.
type Notifier interface {
	// Name identifies the channel in logs ("webhook", "email").
	Name() string
	Notify(ctx context.Context, message string) error
}

// AuditRecorder is the audit/notification sink. Record persists one audit
// entry and, when the details describe an actual change, fans out to the
// configured notifiers. It is best-effort end to end: failures are logged
// and swallowed, never returned to the mutation path.
type AuditRecorder interface {
	Record(ctx context.Context, actorID, targetID, action string, details map[string]any)
}
