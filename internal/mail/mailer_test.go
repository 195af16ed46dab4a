package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTransport struct {
	sendErr   error
	verifyErr error
	sentTo    string
	sentMsg   Message
	calls     int
}

func (f *fakeTransport) Send(ctx context.Context, to string, msg Message) (string, error) {
	f.calls++
	f.sentTo = to
	f.sentMsg = msg
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return "<msg-1@stajdefterim>", nil
}

func (f *fakeTransport) Verify(ctx context.Context) error {
	return f.verifyErr
}

func TestMailer_SendSuccess(t *testing.T) {
	transport := &fakeTransport{}
	mailer := NewMailer(transport, zap.NewNop())

	result := mailer.Send(context.Background(), "ali@example.com", TestEmail{
		Name:   "Ali",
		Email:  "ali@example.com",
		SentAt: time.Now(),
	})

	assert.True(t, result.Success)
	assert.Equal(t, "<msg-1@stajdefterim>", result.MessageID)
	assert.Equal(t, "test", result.Template)
	assert.Empty(t, result.Error)
	assert.Equal(t, "ali@example.com", transport.sentTo)
	assert.Equal(t, "🧪 StajDefterim Test E-postası", transport.sentMsg.Subject)
}

func TestMailer_SendTransportFailure(t *testing.T) {
	transport := &fakeTransport{sendErr: errors.New("smtp timeout")}
	mailer := NewMailer(transport, zap.NewNop())

	result := mailer.Send(context.Background(), "ali@example.com", TestEmail{Name: "Ali"})

	assert.False(t, result.Success)
	assert.Equal(t, "smtp timeout", result.Error)
	assert.Equal(t, "test", result.Template)
	assert.Empty(t, result.MessageID)
}

func TestMailer_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	transport := &fakeTransport{sendErr: errors.New("connection refused")}
	mailer := NewMailer(transport, zap.NewNop())

	for i := 0; i < 5; i++ {
		result := mailer.Send(context.Background(), "ali@example.com", TestEmail{Name: "Ali"})
		assert.False(t, result.Success)
	}

	// Once the breaker trips the transport stops being called.
	calls := transport.calls
	result := mailer.Send(context.Background(), "ali@example.com", TestEmail{Name: "Ali"})
	assert.False(t, result.Success)
	assert.Equal(t, calls, transport.calls)
}

func TestMailer_VerifyConnection(t *testing.T) {
	mailer := NewMailer(&fakeTransport{}, zap.NewNop())
	assert.True(t, mailer.VerifyConnection(context.Background()).Success)

	failing := NewMailer(&fakeTransport{verifyErr: errors.New("auth failed")}, zap.NewNop())
	result := failing.VerifyConnection(context.Background())
	assert.False(t, result.Success)
	assert.Equal(t, "auth failed", result.Error)
}
