package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pressroom/pressroom-api/internal/core/domain"
	"github.com/pressroom/pressroom-api/internal/core/ports"
)

type stubAuditRepo struct {
	insertErr error
	entries   []*domain.AuditEntry
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) Latest(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]*domain.AuditEntry, limit)
	copy(out, r.entries)
	return out, nil
}

type stubNotifier struct {
	name     string
	err      error
	messages []string
}

func (n *stubNotifier) Name() string { return n.name }

func (n *stubNotifier) Notify(_ context.Context, message string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, message)
	return nil
}

func TestAuditRecorder_InsertsAndNotifiesOnChange(t *testing.T) {
	repo := &stubAuditRepo{}
	webhook := &stubNotifier{name: "webhook"}
	email := &stubNotifier{name: "email"}
	rec := NewAuditRecorder(repo, []ports.Notifier{webhook, email}, zerolog.Nop())

	rec.Record(context.Background(), "a", "b", domain.ActionUpdateRole, map[string]any{
		"previousRole": "admin",
		"newRole":      "user",
	})

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.ActorID != "a" || entry.TargetID != "b" || entry.Action != domain.ActionUpdateRole {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}

	if len(webhook.messages) != 1 || len(email.messages) != 1 {
		t.Fatalf("expected one delivery per channel, got %d/%d", len(webhook.messages), len(email.messages))
	}
	msg := webhook.messages[0]
	if !strings.Contains(msg, domain.ActionUpdateRole) {
		t.Fatalf("message missing action: %s", msg)
	}
	if !strings.Contains(msg, `"previousRole": "admin"`) || !strings.Contains(msg, `"newRole": "user"`) {
		t.Fatalf("message missing details: %s", msg)
	}
}

func TestAuditRecorder_NoNotificationOnSameRole(t *testing.T) {
	repo := &stubAuditRepo{}
	webhook := &stubNotifier{name: "webhook"}
	rec := NewAuditRecorder(repo, []ports.Notifier{webhook}, zerolog.Nop())

	rec.Record(context.Background(), "a", "b", domain.ActionUpdateRole, map[string]any{
		"previousRole": "admin",
		"newRole":      "admin",
	})

	// The entry is written; no channel fires.
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(repo.entries))
	}
	if len(webhook.messages) != 0 {
		t.Fatalf("expected no deliveries, got %d", len(webhook.messages))
	}
}

func TestAuditRecorder_DeliveryFailureIsolated(t *testing.T) {
	repo := &stubAuditRepo{}
	failing := &stubNotifier{name: "webhook", err: errors.New("boom")}
	working := &stubNotifier{name: "email"}
	rec := NewAuditRecorder(repo, []ports.Notifier{failing, working}, zerolog.Nop())

	rec.Record(context.Background(), "a", "b", domain.ActionUpdateRole, map[string]any{
		"previousRole": "user",
		"newRole":      "admin",
	})

	// One channel failing never blocks the other.
	if len(working.messages) != 1 {
		t.Fatalf("expected delivery on working channel, got %d", len(working.messages))
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(repo.entries))
	}
}

func TestAuditRecorder_InsertFailureSwallowed(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("mongo down")}
	webhook := &stubNotifier{name: "webhook"}
	rec := NewAuditRecorder(repo, []ports.Notifier{webhook}, zerolog.Nop())

	// Must not panic or propagate; the notification still goes out.
	rec.Record(context.Background(), "a", "b", domain.ActionUpdateRole, map[string]any{
		"previousRole": "user",
		"newRole":      "admin",
	})

	if len(webhook.messages) != 1 {
		t.Fatalf("expected delivery, got %d", len(webhook.messages))
	}
}

func TestAuditRecorder_NonRoleActionsAlwaysNotify(t *testing.T) {
	repo := &stubAuditRepo{}
	webhook := &stubNotifier{name: "webhook"}
	rec := NewAuditRecorder(repo, []ports.Notifier{webhook}, zerolog.Nop())

	rec.Record(context.Background(), "a", "b", domain.ActionDeleteUser, map[string]any{
		"email": "b@example.com",
	})

	if len(webhook.messages) != 1 {
		t.Fatalf("expected delivery, got %d", len(webhook.messages))
	}
}
