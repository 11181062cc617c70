package service

import (
	"context"
	"time"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/pkg/mailer"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/pkg/designtokens"
	"sitebuilder-be/pkg/events"
)

type ISiteSettingsService interface {
	Get(ctx context.Context) (*dto.SiteSettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error)
	SendTestEmail(ctx context.Context, req *dto.TestEmailRequest) (*dto.TestEmailResponse, error)
}

type siteSettingsService struct {
	uowFactory unitofwork.RepositoryFactory
	mailer     mailer.IEmailService
	notifier   contentNotifier
	log        logger.ILogger
}

func NewSiteSettingsService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, publisher events.Publisher, log logger.ILogger) ISiteSettingsService {
	return &siteSettingsService{
		uowFactory: uowFactory,
		mailer:     emailService,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

func defaultSiteSettings() *entity.SiteSettings {
	return &entity.SiteSettings{
		SiteName:             "My Site",
		SocialLinks:          map[string]string{},
		SmtpPort:             587,
		EmailSubjectTemplate: mailer.DefaultSubject,
		EmailBodyTemplate:    mailer.DefaultBody,
		DesignTokens:         map[string]string{},
	}
}

// loadSiteSettings returns the singleton row, creating it with defaults on first access.
func loadSiteSettings(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.SiteSettings, error) {
	repo := uow.SiteSettingsRepository()
	settings, err := repo.FindOne(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}
	settings = defaultSiteSettings()
	if err := repo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// readSiteSettings is loadSiteSettings without the insert, for read-only paths.
func readSiteSettings(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.SiteSettings, error) {
	settings, err := uow.SiteSettingsRepository().FindOne(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return defaultSiteSettings(), nil
	}
	return settings, nil
}

func settingsResponse(s *entity.SiteSettings) *dto.SiteSettingsResponse {
	return &dto.SiteSettingsResponse{SiteSettings: s, SmtpPasswordSet: s.SmtpPassword != ""}
}

// SMTPSettingsLoader feeds the mail transport from the stored site settings.
func SMTPSettingsLoader(uowFactory unitofwork.RepositoryFactory) mailer.SettingsLoader {
	return func(ctx context.Context) (*mailer.SMTPSettings, error) {
		settings, err := readSiteSettings(ctx, uowFactory.NewUnitOfWork(ctx))
		if err != nil {
			return nil, err
		}
		return &mailer.SMTPSettings{
			Host:      settings.SmtpHost,
			Port:      settings.SmtpPort,
			Username:  settings.SmtpUser,
			Password:  settings.SmtpPassword,
			Secure:    settings.SmtpSecure,
			FromEmail: settings.SmtpFromEmail,
			FromName:  settings.SmtpFromName,
		}, nil
	}
}

func (s *siteSettingsService) Get(ctx context.Context) (*dto.SiteSettingsResponse, error) {
	settings, err := loadSiteSettings(ctx, s.uowFactory.NewUnitOfWork(ctx))
	if err != nil {
		return nil, err
	}
	return settingsResponse(settings), nil
}

func (s *siteSettingsService) Update(ctx context.Context, req *dto.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error) {
	if req.DesignTokens != nil {
		if err := designtokens.Validate(*req.DesignTokens); err != nil {
			return nil, apperror.ValidationFailed("designTokens: " + err.Error())
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	settings, err := loadSiteSettings(ctx, uow)
	if err != nil {
		return nil, err
	}
	smtpChanged := applySiteSettings(settings, req)
	if err := uow.SiteSettingsRepository().Update(ctx, settings); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// The next send rebuilds the transport from the saved values
	if smtpChanged && s.mailer != nil {
		s.mailer.Reset()
	}
	s.log.Info("SETTINGS", "Site settings updated", map[string]interface{}{"smtp_changed": smtpChanged})
	s.notifier.changed(ctx, "site_settings", settings.Id, events.ActionUpdated)
	return settingsResponse(settings), nil
}

// applySiteSettings writes present request fields and reports whether any SMTP field was sent.
func applySiteSettings(s *entity.SiteSettings, req *dto.UpdateSiteSettingsRequest) bool {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setOptional := func(dst **string, src *string) {
		if src != nil {
			*dst = nilIfBlank(*src)
		}
	}

	setString(&s.SiteName, req.SiteName)
	setString(&s.SiteUrl, req.SiteUrl)
	setOptional(&s.LogoUrl, req.LogoUrl)
	setOptional(&s.FooterText, req.FooterText)
	setOptional(&s.Copyright, req.Copyright)
	if req.SocialLinks != nil {
		s.SocialLinks = *req.SocialLinks
	}
	setString(&s.NotificationEmail, req.NotificationEmail)
	setString(&s.EmailSubjectTemplate, req.EmailSubjectTemplate)
	setString(&s.EmailBodyTemplate, req.EmailBodyTemplate)
	if req.DesignTokens != nil {
		s.DesignTokens = *req.DesignTokens
	}

	smtpChanged := req.SmtpHost != nil || req.SmtpPort != nil || req.SmtpUser != nil ||
		req.SmtpPassword != nil || req.SmtpSecure != nil || req.SmtpFromEmail != nil || req.SmtpFromName != nil
	setString(&s.SmtpHost, req.SmtpHost)
	if req.SmtpPort != nil {
		s.SmtpPort = *req.SmtpPort
	}
	setString(&s.SmtpUser, req.SmtpUser)
	setString(&s.SmtpPassword, req.SmtpPassword)
	if req.SmtpSecure != nil {
		s.SmtpSecure = *req.SmtpSecure
	}
	setString(&s.SmtpFromEmail, req.SmtpFromEmail)
	setString(&s.SmtpFromName, req.SmtpFromName)
	return smtpChanged
}

// SendTestEmail reports delivery problems in the response body so the admin can read the hint.
func (s *siteSettingsService) SendTestEmail(ctx context.Context, req *dto.TestEmailRequest) (*dto.TestEmailResponse, error) {
	if s.mailer == nil || !s.mailer.Configured(ctx) {
		return &dto.TestEmailResponse{
			Sent:    false,
			Message: "SMTP is not configured",
			Hint:    "Fill in the SMTP host, port and from address in site settings, or set SMTP_* environment variables.",
		}, nil
	}

	settings, err := readSiteSettings(ctx, s.uowFactory.NewUnitOfWork(ctx))
	if err != nil {
		return nil, err
	}
	body := mailer.RenderHTML(
		"<p>This is a test email from {{FORM_NAME}}.</p><p>Sent at {{SUBMITTED_AT}}.</p>",
		mailer.TemplateData{FormName: settings.SiteName, SubmittedAt: time.Now().UTC().Format(time.RFC1123)},
	)

	err = s.mailer.Send(ctx, mailer.Message{
		To:       req.To,
		Subject:  "Test email from " + settings.SiteName,
		HTMLBody: body,
	})
	if err != nil {
		return &dto.TestEmailResponse{
			Sent:    false,
			Message: err.Error(),
			Hint:    mailer.HintFor(err),
		}, nil
	}
	return &dto.TestEmailResponse{Sent: true, Message: "Test email sent to " + req.To}, nil
}
