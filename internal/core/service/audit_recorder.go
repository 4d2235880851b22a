package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/pressroom-api/internal/api/metrics"
	"github.com/pressroom/pressroom-api/internal/core/domain"
	"github.com/pressroom/pressroom-api/internal/core/ports"
)

// notifyTimeout bounds each outbound delivery so a slow channel cannot stall
// the request that triggered it.
const notifyTimeout = 5 * time.Second

// AuditRecorder persists audit entries and fans out best-effort alerts.
// Everything here is telemetry, not part of the mutation's correctness
// contract: every failure is logged and swallowed.
type AuditRecorder struct {
	repo      ports.AuditRepository
	notifiers []ports.Notifier
	log       zerolog.Logger
}

func NewAuditRecorder(repo ports.AuditRepository, notifiers []ports.Notifier, log zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, notifiers: notifiers, log: log}
}

// Record writes one audit entry and, when the details describe an actual
// role change, notifies every configured channel once. A same-role update
// still gets an audit entry but no notification.
func (r *AuditRecorder) Record(ctx context.Context, actorID, targetID, action string, details map[string]any) {
	now := time.Now().UTC()

	entry := &domain.AuditEntry{
		Timestamp: now,
		ActorID:   actorID,
		TargetID:  targetID,
		Action:    action,
		Details:   details,
	}
	if err := r.repo.Insert(ctx, entry); err != nil {
		r.log.Error().Err(err).
			Str("action", action).
			Str("target_id", targetID).
			Msg("failed to insert audit entry")
	}

	if !isHighRisk(action, details) {
		return
	}

	message := formatAlert(action, now, details)
	for _, n := range r.notifiers {
		notifyCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
		err := n.Notify(notifyCtx, message)
		cancel()
		if err != nil {
			metrics.NotificationsTotal.WithLabelValues(n.Name(), "error").Inc()
			r.log.Error().Err(err).
				Str("channel", n.Name()).
				Str("action", action).
				Msg("notification delivery failed")
			continue
		}
		metrics.NotificationsTotal.WithLabelValues(n.Name(), "ok").Inc()
	}
}

// isHighRisk reports whether the action warrants an outbound alert. Role
// updates only alert when the role actually changed; deletes and admin
// creations always do.
func isHighRisk(action string, details map[string]any) bool {
	if action != domain.ActionUpdateRole {
		return true
	}
	return details["previousRole"] != details["newRole"]
}

// formatAlert renders the human-readable summary sent to every channel:
// action name, RFC3339 timestamp, and the details as indented JSON.
func formatAlert(action string, ts time.Time, details map[string]any) string {
	payload, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		payload = []byte(fmt.Sprintf("%v", details))
	}
	return fmt.Sprintf("ADMIN ACTION: %s at %s\nDetails: %s", action, ts.Format(time.RFC3339), payload)
}
