package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// messageCreator часть twilio API, которой пользуется Client
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Client отправляет SMS через Twilio
type Client struct {
	api  messageCreator
	from string
	log  Logger
}

// NewClient создает клиента Twilio
func NewClient(cfg Config, log Logger) (*Client, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, ErrNotConfigured
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Client{api: client.Api, from: cfg.FromNumber, log: log}, nil
}

// Send отправляет SMS. Twilio SDK не принимает контекст, поэтому вызов
// идет в горутине, а Send возвращается по истечении ctx, не дожидаясь ответа.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" || strings.TrimSpace(msg.Body) == "" {
		return fmt.Errorf("%w: recipient and body are required", ErrInvalidMessage)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(c.from)
	params.SetBody(msg.Body)

	type result struct {
		resp *openapi.ApiV2010Message
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := c.api.CreateMessage(params)
		done <- result{resp: resp, err: err}
	}()

	var resp *openapi.ApiV2010Message
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, msg.To, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, msg.To, res.err)
		}
		resp = res.resp
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	c.log.Info("SMS sent via Twilio: to=%s, sid=%s", msg.To, sid)
	return nil
}

// StubClient только пишет SMS в лог, когда Twilio выключен
type StubClient struct {
	log Logger
}

// NewStubClient создает заглушку
func NewStubClient(log Logger) *StubClient {
	return &StubClient{log: log}
}

// Send логирует SMS без отправки
func (s *StubClient) Send(_ context.Context, msg Message) error {
	s.log.Info("SMS disabled, would send: to=%s, body=%q", msg.To, msg.Body)
	return nil
}
