package mailer

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/staff/pkg/config"
)

type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) Enabled() bool {
	return c.cfg.Enabled && c.cfg.Host != ""
}

func (c *Client) SendMessage(subject, message string, recipients ...string) error {
	if !c.Enabled() {
		return fmt.Errorf("mailer is not configured")
	}

	err := c.dialer.DialAndSend(c.newMessage(subject, message, recipients))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (c *Client) newMessage(subject, message string, recipients []string) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)

	return msg
}
