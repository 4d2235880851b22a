package ports

import (
	"context"

	"github.com/pressroom/pressroom-api/internal/core/domain"
)

// AuditRepository handles the append-only audit_logs collection. There is no
// update or delete: entries are written once and read back for display.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// Latest returns up to limit entries, newest first.
	Latest(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
