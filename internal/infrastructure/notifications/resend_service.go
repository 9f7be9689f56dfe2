package notifications

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// ResendServiceImpl implements domain.MailService over the Resend HTTP API.
type ResendServiceImpl struct {
	client *resend.Client
	from   string
}

// NewResendService creates a new Resend mail service. From is the full sender
// address, e.g. "TrackMyHomeschool <no-reply@example.com>".
func NewResendService(apiKey, from string) domain.MailService {
	return &ResendServiceImpl{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send implements domain.MailService
func (s *ResendServiceImpl) Send(ctx context.Context, to, subject, html string) error {
	// Without a configured sender, log instead of sending. Keeps local
	// development working without Resend credentials.
	if s.from == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
