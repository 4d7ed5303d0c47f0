package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendNotifier emails employees through Resend when feedback is written
// for them.
type ResendNotifier struct {
	client    *resend.Client
	fromEmail string
}

func NewResendNotifier(apiKey, fromEmail string) *ResendNotifier {
	return &ResendNotifier{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (r *ResendNotifier) Publish(ctx context.Context, n Notification) error {
	params := &resend.SendEmailRequest{
		From:    r.fromEmail,
		To:      []string{n.EmployeeEmail},
		Subject: fmt.Sprintf("New feedback from %s", n.ManagerName),
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Hi %s,</h2>
				<p>%s just shared new feedback with you on TeamPulse.</p>
				<p>Log in to review and acknowledge it.</p>
				<p style="color: #888; font-size: 14px; margin-top: 16px;">
					You are receiving this because your manager wrote feedback for you.
				</p>
			</div>
		`, n.EmployeeName, n.ManagerName),
	}

	sent, err := r.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Feedback notification sent to %s (ID: %s)", n.EmployeeEmail, sent.Id)
	return nil
}
