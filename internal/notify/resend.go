package notify

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"feedback-collector/internal/models"

	"github.com/resend/resend-go/v2"
)

// ResendNotifier emails the employee a copy of what they submitted.
type ResendNotifier struct {
	client *resend.Client
	from   string
}

func NewResendNotifier(apiKey, from string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (n *ResendNotifier) Notify(ctx context.Context, f *models.Feedback) error {
	if f.Email == "" {
		log.Printf("⚠️  No email for %s, skipping confirmation", f.EmpID)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{f.Email},
		Subject: "Thanks for your feedback",
		Html:    confirmationHTML(f),
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Confirmation sent to %s (ID: %s)", f.Email, sent.Id)
	return nil
}

func confirmationHTML(f *models.Feedback) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #333;">Thank you, %s!</h2>`, html.EscapeString(f.Name))
	b.WriteString(`<p>We recorded the following feedback:</p><ul>`)
	for _, line := range strings.Split(Summary(f), "\n") {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(line))
	}
	b.WriteString(`</ul><p style="color: #888; font-size: 14px;">Each employee can submit feedback once.</p></div>`)
	return b.String()
}
