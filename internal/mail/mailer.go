package mail

import (
	"fmt"
	"net/smtp"
)

// Mailer delivers password-reset mail. Delivery is an external collaborator;
// callers only see success or failure of the hand-off.
type Mailer interface {
	SendPasswordReset(to, token string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	sender   string
	resetURL string
}

// NewSMTP creates an SMTP mailer. resetURL is the front-end page the reset
// link points at; the token is appended as a query parameter.
func NewSMTP(host, port, username, password, sender, resetURL string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sender:   sender,
		resetURL: resetURL,
	}
}

// SendPasswordReset mails a reset link carrying the short-lived token.
func (m *SMTPMailer) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s?tk=%s", m.resetURL, token)
	body := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: Recipe Book Reset Password\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
		"\r\n"+
		"<h3>Click the link to reset your password:</h3>\n"+
		"<p><a href=%q>Reset Password</a></p>\r\n",
		m.sender, to, link)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.sender, []string{to}, []byte(body))
}

// Noop discards mail. Used when SMTP credentials are not configured.
type Noop struct{}

// SendPasswordReset implements Mailer.
func (Noop) SendPasswordReset(to, token string) error {
	return nil
}
