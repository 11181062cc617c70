package mailer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"sitebuilder-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func testLogger(t *testing.T) logger.ILogger {
	return logger.NewFileLogger(filepath.Join(t.TempDir(), "app.log"))
}

func TestRenderText(t *testing.T) {
	data := TemplateData{
		FormName:    "contact",
		SubmittedAt: "2024-05-01 10:00",
		FormData:    []byte(`{"email":"a@b.co","Name":"Ann","company":{"name":"Acme"},"tags":["x","y"]}`),
	}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"plain field", "From {{email}}", "From a@b.co"},
		{"case insensitive key", "Hi {{NAME}}", "Hi Ann"},
		{"nested path", "{{company.name}}", "Acme"},
		{"array joined", "{{tags}}", "x, y"},
		{"builtin", "{{FORM_NAME}} at {{SUBMITTED_AT}}", "contact at 2024-05-01 10:00"},
		{"unknown is empty", "[{{missing}}]", "[]"},
		{"spaces inside braces", "{{ email }}", "a@b.co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderText(tt.tmpl, data))
		})
	}
}

func TestRenderHTMLEscapesValues(t *testing.T) {
	data := TemplateData{FormData: []byte(`{"message":"<script>alert(1)</script>"}`)}

	out := RenderHTML("<p>{{message}}</p>", data)

	assert.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>", out)
}

func TestAllFieldsIsSorted(t *testing.T) {
	data := TemplateData{FormData: []byte(`{"b":"2","a":"1"}`)}

	assert.Equal(t, "a: 1\nb: 2", RenderText("{{ALL_FIELDS}}", data))
}

func TestHintFor(t *testing.T) {
	assert.Empty(t, HintFor(nil))
	assert.Empty(t, HintFor(errors.New("something odd")))
	assert.Contains(t, HintFor(errors.New("535 5.7.8 Authentication failed")), "username or password")
	assert.Contains(t, HintFor(errors.New("x509: certificate signed by unknown authority")), "TLS")
	assert.Contains(t, HintFor(errors.New("421 too many connections")), "rate limiting")
	assert.Contains(t, HintFor(errors.New("dial tcp 10.0.0.1:587: connection refused")), "Could not reach")
	assert.Contains(t, HintFor(errors.New("smtp: 535 authentication credentials invalid")), "username or password")
}

func TestHintForIgnoresRecipientAddress(t *testing.T) {
	tlsErr := errors.New("x509: certificate signed by unknown authority")
	refused := errors.New("dial tcp 10.0.0.1:587: connect: connection refused")

	assert.Contains(t, HintFor(&SendError{To: "ops@example.com", Err: tlsErr}), "TLS")
	assert.Contains(t, HintFor(&SendError{To: "authors@example.com", Err: refused}), "Could not reach")
	assert.Contains(t, HintFor(fmt.Errorf("test email: %w", &SendError{To: "ssl-team@example.com", Err: refused})), "Could not reach")
	assert.Empty(t, HintFor(&SendError{To: "auth@example.com", Err: errors.New("mailbox full")}))
}

func TestSendFallsBackToEnvironmentSettings(t *testing.T) {
	fake := &fakeSender{}
	var built []SMTPSettings
	loader := func(ctx context.Context) (*SMTPSettings, error) { return &SMTPSettings{}, nil }
	svc := NewEmailServiceWithSender(loader, SMTPSettings{Host: "smtp.env", Port: 587, FromEmail: "env@site.test"}, testLogger(t),
		func(cfg SMTPSettings) Sender {
			built = append(built, cfg)
			return fake
		})

	require.NoError(t, svc.Send(context.Background(), Message{To: "to@x.test", Subject: "s", HTMLBody: "b"}))
	require.NoError(t, svc.Send(context.Background(), Message{To: "to@x.test", Subject: "s", HTMLBody: "b"}))

	require.Len(t, built, 1)
	assert.Equal(t, "smtp.env", built[0].Host)
	assert.Len(t, fake.sent, 2)
	assert.Equal(t, []string{"env@site.test"}, fake.sent[0].GetHeader("From"))
}

func TestResetReloadsStoredSettings(t *testing.T) {
	fake := &fakeSender{}
	stored := &SMTPSettings{Host: "smtp.one", Port: 465, FromEmail: "one@site.test", FromName: "Site"}
	var hosts []string
	svc := NewEmailServiceWithSender(func(ctx context.Context) (*SMTPSettings, error) { return stored, nil }, SMTPSettings{}, testLogger(t),
		func(cfg SMTPSettings) Sender {
			hosts = append(hosts, cfg.Host)
			return fake
		})

	require.NoError(t, svc.Send(context.Background(), Message{To: "a@x.test"}))
	stored = &SMTPSettings{Host: "smtp.two", Port: 465, FromEmail: "two@site.test"}
	svc.Reset()
	require.NoError(t, svc.Send(context.Background(), Message{To: "a@x.test"}))

	assert.Equal(t, []string{"smtp.one", "smtp.two"}, hosts)
}

func TestSendNotConfigured(t *testing.T) {
	svc := NewEmailService(nil, SMTPSettings{}, testLogger(t))

	err := svc.Send(context.Background(), Message{To: "a@x.test"})

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, svc.Configured(context.Background()))
}

func TestSendWrapsTransportError(t *testing.T) {
	fake := &fakeSender{err: errors.New("535 authentication failed")}
	svc := NewEmailServiceWithSender(nil, SMTPSettings{Host: "h", Port: 25, FromEmail: "f@x.test"}, testLogger(t),
		func(SMTPSettings) Sender { return fake })

	err := svc.Send(context.Background(), Message{To: "a@x.test"})

	require.Error(t, err)
	assert.Contains(t, HintFor(err), "username or password")
}
