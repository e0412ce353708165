// Package mailer sends account mail over SMTP. It is a thin collaborator
// behind the accounts service; delivery guarantees are out of scope.
package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer sends plain-text mail through one SMTP server
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	baseURL  string
}

// New creates a mailer
func New(host string, port int, username, password, from, baseURL string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		baseURL:  baseURL,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

// SendVerification mails the email-verification link
func (m *Mailer) SendVerification(to, token string) error {
	link := fmt.Sprintf("%s/api/v1/accounts/verify-email?token=%s", m.baseURL, token)
	body := "Welcome!\n\nPlease verify your email address by opening the link below:\n\n" +
		link + "\n\nThe link expires shortly. If you did not sign up, ignore this mail."
	return m.send(to, "Verify your email address", body)
}

// SendPasswordReset mails the password-reset link
func (m *Mailer) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)
	body := "A password reset was requested for your account.\n\n" +
		"Open the link below to choose a new password:\n\n" +
		link + "\n\nThe link expires shortly. If you did not request a reset, ignore this mail."
	return m.send(to, "Reset your password", body)
}
