package config

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"
)

// SendMail sends an HTML mail through the configured SMTP relay.
// Returns an error when SMTP is not configured; callers treat sending as
// best-effort.
func SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}

	cfg := App.SMTP
	if cfg.Host == "" || cfg.From == "" {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	m := mail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)

	// Mandatory STARTTLS on 587 works with the usual relays (Gmail/Office365).
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.SkipTLSVerify,
	}

	return d.DialAndSend(m)
}
