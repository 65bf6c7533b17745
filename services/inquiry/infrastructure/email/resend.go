// Package email implements the outbound Mailer port against the Resend API.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/ghuser/cardboard/services/inquiry/domain"
)

// ResendMailer sends mail through Resend's transactional email API.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer returns a ResendMailer authenticated with the given API key.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// Send delivers one message and returns Resend's message id.
// Provider failures wrap domain.ErrSendFailed; there is no retry.
func (m *ResendMailer) Send(ctx context.Context, e domain.OutboundEmail) (string, error) {
	from := e.From
	if e.FromName != "" {
		from = fmt.Sprintf("%s <%s>", e.FromName, e.From)
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      []string{e.To},
		ReplyTo: e.ReplyTo,
		Subject: e.Subject,
		Text:    e.Text,
		Html:    e.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSendFailed, err)
	}
	return sent.Id, nil
}
