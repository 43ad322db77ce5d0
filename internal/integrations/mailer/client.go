package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sendClient часть *sendgrid.Client, которой пользуется Client
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Client отправляет письма через SendGrid
type Client struct {
	client    sendClient
	fromEmail string
	fromName  string
	log       Logger
}

// NewClient создает клиента SendGrid
func NewClient(cfg Config, log Logger) (*Client, error) {
	if cfg.APIKey == "" || cfg.FromEmail == "" {
		return nil, ErrNotConfigured
	}
	return &Client{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       log,
	}, nil
}

// Send отправляет письмо
func (c *Client) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" || msg.Subject == "" {
		return fmt.Errorf("%w: recipient and subject are required", ErrInvalidMessage)
	}

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, html)

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, msg.To, err)
	}
	if resp.StatusCode >= 400 {
		c.log.Error("SendGrid returned status %d for to=%s: %s", resp.StatusCode, msg.To, resp.Body)
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	c.log.Info("Email sent via SendGrid: to=%s, status=%d", msg.To, resp.StatusCode)
	return nil
}

// StubClient только пишет письмо в лог, когда SendGrid выключен
type StubClient struct {
	log Logger
}

// NewStubClient создает заглушку
func NewStubClient(log Logger) *StubClient {
	return &StubClient{log: log}
}

// Send логирует письмо без отправки
func (s *StubClient) Send(_ context.Context, msg Message) error {
	s.log.Info("Email disabled, would send: to=%s, subject=%q", msg.To, msg.Subject)
	return nil
}
