package mailer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"sitebuilder-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when neither site settings nor the environment hold usable SMTP settings.
var ErrNotConfigured = errors.New("smtp is not configured")

// SendError is a transport failure for one recipient.
type SendError struct {
	To  string
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to %s: %v", e.To, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// SMTPSettings is the transport configuration a message is sent with.
type SMTPSettings struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Secure    bool
	FromEmail string
	FromName  string
}

func (s *SMTPSettings) Configured() bool {
	return s != nil && s.Host != "" && s.Port > 0 && s.FromEmail != ""
}

type Message struct {
	To       string
	Subject  string
	HTMLBody string
	ReplyTo  string
}

// Sender delivers one built message. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SettingsLoader reads the SMTP settings stored in the site settings row.
// Returning nil (or unconfigured settings) falls back to the environment.
type SettingsLoader func(ctx context.Context) (*SMTPSettings, error)

type IEmailService interface {
	Send(ctx context.Context, msg Message) error
	// Configured reports whether a transport can be built without sending anything.
	Configured(ctx context.Context) bool
	// Reset drops the cached transport so the next Send reloads settings.
	Reset()
}

type emailService struct {
	loader    SettingsLoader
	fallback  SMTPSettings
	newSender func(SMTPSettings) Sender
	log       logger.ILogger

	mu       sync.Mutex
	sender   Sender
	settings *SMTPSettings
}

func NewEmailService(loader SettingsLoader, fallback SMTPSettings, log logger.ILogger) IEmailService {
	return &emailService{
		loader:    loader,
		fallback:  fallback,
		newSender: newDialer,
		log:       log,
	}
}

// NewEmailServiceWithSender is NewEmailService with a custom transport factory.
func NewEmailServiceWithSender(loader SettingsLoader, fallback SMTPSettings, log logger.ILogger, factory func(SMTPSettings) Sender) IEmailService {
	s := NewEmailService(loader, fallback, log).(*emailService)
	s.newSender = factory
	return s
}

func newDialer(cfg SMTPSettings) Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Secure
	return d
}

func (s *emailService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = nil
	s.settings = nil
}

func (s *emailService) Configured(ctx context.Context) bool {
	_, err := s.resolve(ctx)
	return err == nil
}

func (s *emailService) resolve(ctx context.Context) (*SMTPSettings, error) {
	if s.loader != nil {
		stored, err := s.loader(ctx)
		if err != nil {
			return nil, err
		}
		if stored.Configured() {
			return stored, nil
		}
	}
	if s.fallback.Configured() {
		cfg := s.fallback
		return &cfg, nil
	}
	return nil, ErrNotConfigured
}

// transport returns the cached sender, building it on first use.
func (s *emailService) transport(ctx context.Context) (Sender, *SMTPSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sender != nil {
		return s.sender, s.settings, nil
	}

	cfg, err := s.resolve(ctx)
	if err != nil {
		return nil, nil, err
	}

	s.sender = s.newSender(*cfg)
	s.settings = cfg
	s.log.Info("MAILER", "SMTP transport initialized", map[string]interface{}{
		"host":   cfg.Host,
		"port":   cfg.Port,
		"secure": cfg.Secure,
	})
	return s.sender, s.settings, nil
}

func (s *emailService) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return errors.New("message has no recipient")
	}

	sender, cfg, err := s.transport(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	if cfg.FromName != "" {
		m.SetAddressHeader("From", cfg.FromEmail, cfg.FromName)
	} else {
		m.SetHeader("From", cfg.FromEmail)
	}
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := sender.DialAndSend(m); err != nil {
		s.log.Error("MAILER", "Failed to send email", map[string]interface{}{
			"to":    msg.To,
			"error": err.Error(),
		})
		return &SendError{To: msg.To, Err: err}
	}

	s.log.Info("MAILER", "Email sent", map[string]interface{}{"to": msg.To})
	return nil
}
