package mail

import (
	"context"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/pkg/circuitbreaker"
)

// Result is the uniform outcome of a send or verification attempt.
// Render and transport errors are reported here, never raised to the
// caller.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Template  string `json:"template,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Transport delivers a rendered message to a recipient.
type Transport interface {
	Send(ctx context.Context, to string, msg Message) (string, error)
	Verify(ctx context.Context) error
}

// Mailer renders and sends emails across a circuit-broken transport.
type Mailer struct {
	transport Transport
	cb        *gobreaker.CircuitBreaker
	logger    *zap.Logger
}

func NewMailer(transport Transport, logger *zap.Logger) *Mailer {
	return &Mailer{
		transport: transport,
		cb:        circuitbreaker.New("smtp"),
		logger:    logger,
	}
}

func (m *Mailer) Send(ctx context.Context, to string, email Email) Result {
	msg, err := email.Render()
	if err != nil {
		m.logger.Error("email render failed",
			zap.String("template", email.Template()),
			zap.Error(err))
		return Result{Template: email.Template(), Error: err.Error()}
	}

	id, err := m.cb.Execute(func() (interface{}, error) {
		return m.transport.Send(ctx, to, msg)
	})
	if err != nil {
		m.logger.Error("email send failed",
			zap.String("template", email.Template()),
			zap.String("to", to),
			zap.Error(err))
		return Result{Template: email.Template(), Error: err.Error()}
	}

	m.logger.Info("email sent",
		zap.String("template", email.Template()),
		zap.String("to", to),
		zap.String("message_id", id.(string)))
	return Result{Success: true, MessageID: id.(string), Template: email.Template()}
}

// VerifyConnection performs a transport handshake to confirm outbound
// mail capability. Used by the health surface, not by scheduled sends.
func (m *Mailer) VerifyConnection(ctx context.Context) Result {
	if err := m.transport.Verify(ctx); err != nil {
		m.logger.Warn("mail transport verification failed", zap.Error(err))
		return Result{Error: err.Error()}
	}
	return Result{Success: true}
}
