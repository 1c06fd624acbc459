// Package mailer sends transactional email through Resend.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Mailer sends account emails
type Mailer struct {
	client *resend.Client
	sender string
}

// New creates a Resend-backed mailer
func New(apiKey, sender string) *Mailer {
	return &Mailer{
		client: resend.NewClient(apiKey),
		sender: sender,
	}
}

// SendActivationEmail delivers the one-time activation code to a newly
// registered user.
func (m *Mailer) SendActivationEmail(ctx context.Context, to, firstName, code string) error {
	name := firstName
	if name == "" {
		name = "there"
	}

	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{to},
		Subject: "Activate your Synapse account",
		Text: fmt.Sprintf("Hi %s,\n\nYour activation code is: %s\n\nIt expires in 20 minutes.\n", name, code),
		Html: fmt.Sprintf("<p>Hi %s,</p><p>Your activation code is: <strong>%s</strong></p><p>It expires in 20 minutes.</p>", name, code),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send activation email: %w", err)
	}
	return nil
}
