package mailer

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Message is one outbound mail. HTML is optional; Text is always set.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends mail. Fire-and-forget from the caller's perspective:
// callers log a send failure but do not fail their own operation on it.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	addr string // host:port
	auth smtp.Auth
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
	}
}

func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", msg.From))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	if msg.HTML != "" {
		sb.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		sb.WriteString(msg.HTML)
	} else {
		sb.WriteString("\r\n")
		sb.WriteString(msg.Text)
	}

	if err := smtp.SendMail(m.addr, m.auth, msg.From, []string{msg.To}, []byte(sb.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// LogMailer writes mail to the application log instead of sending it.
// Used when no SMTP relay is configured (local development).
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	log.Printf("[LogMailer] To=%s Subject=%q\n%s", msg.To, msg.Subject, msg.Text)
	return nil
}
