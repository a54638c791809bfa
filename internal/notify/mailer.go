package notify

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer sends a single notification email.
type Mailer interface {
	Send(subject, body string) error
}

// SMTPMailer sends mail through the SMTP server configured in the
// environment.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPMailerFromEnv builds a mailer from SMTP_* environment
// variables. Returns nil when SMTP_HOST is unset, which callers treat
// as "notifications disabled". The interface return keeps that nil
// untyped, so a nil comparison in the caller stays true.
func NewSMTPMailerFromEnv() Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	user := os.Getenv("SMTP_USER")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "no-reply@dhstore.rw"
	}
	to := user
	if to == "" {
		to = from
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, os.Getenv("SMTP_PASS")),
		from:   from,
		to:     to,
	}
}

func (m *SMTPMailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return m.dialer.DialAndSend(msg)
}
