package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// EmailNotifier is the log-only email placeholder. A real deployment would
// swap this for SendGrid, SES or similar; the interface stays the same.
type EmailNotifier struct {
	recipient string
	log       zerolog.Logger
}

func NewEmailNotifier(recipient string, log zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{recipient: recipient, log: log}
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) Notify(_ context.Context, message string) error {
	n.log.Info().
		Str("to", n.recipient).
		Str("body", message).
		Msg("security email alert")
	return nil
}
