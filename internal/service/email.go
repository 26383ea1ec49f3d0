package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendRenewalReminder(ctx context.Context, email, memberName, offeringName string, endDate time.Time) error {
	subject := fmt.Sprintf("Your %s expires on %s", offeringName, endDate.Format("Jan 2, 2006"))
	plainText := fmt.Sprintf("Hi %s,\n\nYour %s ends on %s. Renew at the front desk or online to keep training without a break.\n\nSee you at the gym!",
		memberName, offeringName, endDate.Format("January 2, 2006"))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>Hi %s,</p>
				<p>Your <strong>%s</strong> ends on <strong>%s</strong>.</p>
				<p>Renew at the front desk or online to keep training without a break.</p>
			</body>
		</html>
	`, memberName, offeringName, endDate.Format("January 2, 2006"))
	return s.send(email, memberName, subject, plainText, htmlContent)
}

func (s *emailService) SendAccountApproved(ctx context.Context, email, name string) error {
	plainText := fmt.Sprintf("Hi %s,\n\nYour account has been approved. You can now sign in and start managing your gym.", name)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>Hi %s,</p>
				<p>Your account has been <strong>approved</strong>. You can now sign in and start managing your gym.</p>
			</body>
		</html>
	`, name)
	return s.send(email, name, "Your account is ready", plainText, htmlContent)
}

func (s *emailService) SendAccountRejected(ctx context.Context, email, name string) error {
	plainText := fmt.Sprintf("Hi %s,\n\nYour account request was not approved. Reply to this email if you believe this is a mistake.", name)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>Hi %s,</p>
				<p>Your account request was not approved. Reply to this email if you believe this is a mistake.</p>
			</body>
		</html>
	`, name)
	return s.send(email, name, "Account request update", plainText, htmlContent)
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
