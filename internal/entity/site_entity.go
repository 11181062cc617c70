package entity

import (
	"encoding/json"
	"time"
)

// SiteSettings is the single row of site-wide configuration: footer, SMTP and design tokens.
type SiteSettings struct {
	Id                   int               `json:"id"`
	SiteName             string            `json:"siteName"`
	SiteUrl              string            `json:"siteUrl"`
	LogoUrl              *string           `json:"logoUrl"`
	FooterText           *string           `json:"footerText"`
	Copyright            *string           `json:"copyright"`
	SocialLinks          map[string]string `json:"socialLinks"`
	SmtpHost             string            `json:"smtpHost"`
	SmtpPort             int               `json:"smtpPort"`
	SmtpUser             string            `json:"smtpUser"`
	SmtpPassword         string            `json:"-"`
	SmtpSecure           bool              `json:"smtpSecure"`
	SmtpFromEmail        string            `json:"smtpFromEmail"`
	SmtpFromName         string            `json:"smtpFromName"`
	NotificationEmail    string            `json:"notificationEmail"`
	EmailSubjectTemplate string            `json:"emailSubjectTemplate"`
	EmailBodyTemplate    string            `json:"emailBodyTemplate"`
	DesignTokens         map[string]string `json:"designTokens"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// SmtpConfigured reports whether enough SMTP settings exist to attempt a send.
func (s *SiteSettings) SmtpConfigured() bool {
	return s != nil && s.SmtpHost != "" && s.SmtpPort > 0 && s.SmtpFromEmail != ""
}

type EmailStatus string

const (
	EmailStatusPending       EmailStatus = "pending"
	EmailStatusSent          EmailStatus = "sent"
	EmailStatusFailed        EmailStatus = "failed"
	EmailStatusNotConfigured EmailStatus = "not_configured"
)

// EmailDetails records the outcome of the last notification attempt.
type EmailDetails struct {
	Recipient   string     `json:"recipient,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	Error       string     `json:"error,omitempty"`
	Hint        string     `json:"hint,omitempty"`
	Attempts    int        `json:"attempts"`
	AttemptedAt *time.Time `json:"attemptedAt,omitempty"`
	SentAt      *time.Time `json:"sentAt,omitempty"`
}

// FormSubmission stores whatever a public form posted, plus the notification outcome.
type FormSubmission struct {
	Id           int             `json:"id"`
	FormName     string          `json:"formName"`
	FormData     json.RawMessage `json:"formData"`
	EmailStatus  EmailStatus     `json:"emailStatus"`
	EmailDetails *EmailDetails   `json:"emailDetails"`
	IpAddress    *string         `json:"ipAddress"`
	UserAgent    *string         `json:"userAgent"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
