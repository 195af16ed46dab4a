package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/stajdefterim/backend/internal/config"
)

// SMTPTransport sends messages over an authenticated SMTP connection.
type SMTPTransport struct {
	client *gomail.Client
	from   string
}

func NewSMTPTransport(cfg config.SMTPConfig) (*SMTPTransport, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPTransport{client: client, from: cfg.From}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, to string, msg Message) (string, error) {
	m := gomail.NewMsg()
	if err := m.From(t.from); err != nil {
		return "", fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return "", fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	m.SetMessageID()

	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return m.GetMessageID(), nil
}

// Verify opens and closes a connection to the SMTP server.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	if err := t.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return t.client.Close()
}
