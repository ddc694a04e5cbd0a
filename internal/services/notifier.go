package services

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Notifier delivers a plain-text notification to a single recipient.
// Delivery is best effort: callers log failures and carry on, a lost
// email never rolls back the task, report or reward write it follows.
type Notifier interface {
	Send(to, subject, body string) error
}

// SMTPNotifier sends mail through an SMTP relay.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier creates a Notifier backed by the given SMTP relay.
func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *SMTPNotifier) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}

// NoopNotifier discards notifications. Used when SMTP is not configured.
type NoopNotifier struct{}

func (NoopNotifier) Send(to, subject, body string) error {
	return nil
}

// notify performs a best-effort send, logging failures instead of
// returning them.
func notify(n Notifier, to, subject, body string) {
	if n == nil || to == "" {
		return
	}
	if err := n.Send(to, subject, body); err != nil {
		log.Printf("Failed to send notification to %s: %v", to, err)
	}
}
