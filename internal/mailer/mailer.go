// Package mailer sends the optional order-notification mails to the
// shop owner over SMTP.
package mailer

import (
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"github.com/shamisthub/storefront/config"
)

type Mailer struct {
	cfg config.MailConfig
}

// New returns nil when mail is disabled; callers treat a nil mailer as
// "do not notify".
func New(cfg config.MailConfig) *Mailer {
	if !cfg.Enabled {
		return nil
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.SmtpHost, m.cfg.SmtpPort, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send order notification")
	}
	return nil
}
