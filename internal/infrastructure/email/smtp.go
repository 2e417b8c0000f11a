// Package email delivers account and workflow notification mails over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"crowdfund/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// BaseURL is the public URL links in mails point at.
	BaseURL string
	// Enabled turns delivery off entirely. Disabled delivery logs the mail
	// instead, which keeps local development working without an SMTP server.
	Enabled bool
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPEmailService(config SMTPConfig, logger logger.Interface) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
		logger: logger,
	}
}

// SendConfirmationMail sends the email confirmation link for a fresh
// registration.
func (s *SMTPEmailService) SendConfirmationMail(to, token string) error {
	confirmURL := fmt.Sprintf("%s/auth/confirm?token=%s", s.config.BaseURL, token)

	subject := "Confirm Your Email Address"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome!</h2>
			<p>Please confirm your email address by clicking the link below:</p>
			<p><a href="%s">Confirm Email Address</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 10 minutes.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, confirmURL, confirmURL)

	plainBody := fmt.Sprintf(`
Welcome!

Please confirm your email address by visiting:
%s

This link will expire in 10 minutes.

If you didn't create an account, please ignore this email.
	`, confirmURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendDepositApprovedMail notifies a user that their deposit was matched and
// approved.
func (s *SMTPEmailService) SendDepositApprovedMail(to, reference string, amount int64) error {
	subject := "Your Deposit Has Been Approved"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Deposit Approved</h2>
			<p>Your deposit with reference <strong>%s</strong> has been approved for an amount of %d.</p>
			<p>You can now mint the corresponding tokens to your wallet.</p>
		</body>
		</html>
	`, reference, amount)

	plainBody := fmt.Sprintf(`
Deposit Approved

Your deposit with reference %s has been approved for an amount of %d.

You can now mint the corresponding tokens to your wallet.
	`, reference, amount)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	if !s.config.Enabled {
		s.logger.Infow("email delivery disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
