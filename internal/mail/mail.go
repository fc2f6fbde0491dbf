package mail

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// Mailer delivers account email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password, from: from}
}

// SendPasswordReset mails the reset link. The link expires after an
// hour, which the body says outright.
func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: StudyDesk <%s>\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString("Subject: Password Reset Request - StudyDesk\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("<h2>Password Reset Request</h2>\r\n")
	msg.WriteString("<p>You requested a password reset for your StudyDesk account.</p>\r\n")
	msg.WriteString("<p>Click the link below to reset your password:</p>\r\n")
	msg.WriteString(fmt.Sprintf("<a href=\"%s\">Reset Password</a>\r\n", resetURL))
	msg.WriteString("<p>This link will expire in 1 hour.</p>\r\n")
	msg.WriteString("<p>If you didn't request this, please ignore this email.</p>\r\n")

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := net.JoinHostPort(m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// LogMailer writes reset links to the log instead of sending them,
// for installs without an SMTP relay.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(to, resetURL string) error {
	m.log.Info().Str("to", to).Str("reset_url", resetURL).Msg("smtp not configured, logging reset link")
	return nil
}
