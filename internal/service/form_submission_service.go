package service

import (
	"context"
	"io"
	"sort"
	"strconv"
	"time"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/pkg/mailer"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/pkg/export"

	"github.com/tidwall/gjson"
)

const (
	maxSubmissionPage     = 200
	notConfiguredHint     = "Configure SMTP in site settings to receive form notifications."
	noRecipientHint       = "Set a notification email (or an SMTP from address) in site settings."
	submissionTimeLayout  = time.RFC3339
	submissionExportSheet = "Submissions"
)

type IFormSubmissionService interface {
	Submit(ctx context.Context, req *dto.SubmitFormRequest, ipAddress, userAgent string) (*dto.SubmitFormResponse, error)
	GetAll(ctx context.Context, filter dto.FormSubmissionFilter) (*dto.FormSubmissionListResponse, error)
	Show(ctx context.Context, id int) (*entity.FormSubmission, error)
	Export(ctx context.Context, filter dto.FormSubmissionFilter, format string, w io.Writer) error
	RetryEmail(ctx context.Context, id int) (*entity.FormSubmission, error)
	Delete(ctx context.Context, id int) error
}

type formSubmissionService struct {
	uowFactory unitofwork.RepositoryFactory
	mailer     mailer.IEmailService
	log        logger.ILogger
	now        func() time.Time
}

func NewFormSubmissionService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, log logger.ILogger) IFormSubmissionService {
	return &formSubmissionService{
		uowFactory: uowFactory,
		mailer:     emailService,
		log:        log,
		now:        time.Now,
	}
}

// Submit stores the submission first so nothing is lost when mail delivery fails.
func (s *formSubmissionService) Submit(ctx context.Context, req *dto.SubmitFormRequest, ipAddress, userAgent string) (*dto.SubmitFormResponse, error) {
	if !gjson.ValidBytes(req.FormData) || !gjson.ParseBytes(req.FormData).IsObject() {
		return nil, apperror.ValidationFailed("formData: must be a JSON object")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	submission := &entity.FormSubmission{
		FormName:    req.FormName,
		FormData:    req.FormData,
		EmailStatus: entity.EmailStatusPending,
		IpAddress:   nilIfBlank(ipAddress),
		UserAgent:   nilIfBlank(userAgent),
	}
	if err := uow.FormSubmissionRepository().Create(ctx, submission); err != nil {
		return nil, err
	}
	s.log.Info("FORMS", "Form submitted", map[string]interface{}{
		"submission_id": submission.Id,
		"form_name":     submission.FormName,
	})

	if err := s.notify(ctx, submission); err != nil {
		return nil, err
	}
	return &dto.SubmitFormResponse{Id: submission.Id, EmailStatus: submission.EmailStatus}, nil
}

// notify sends the notification for one submission and records the outcome on it.
// Delivery failures are stored, not returned.
func (s *formSubmissionService) notify(ctx context.Context, submission *entity.FormSubmission) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := readSiteSettings(ctx, uow)
	if err != nil {
		return err
	}

	details := submission.EmailDetails
	if details == nil {
		details = &entity.EmailDetails{}
	}
	attemptedAt := s.now().UTC()
	details.AttemptedAt = &attemptedAt
	details.Error = ""
	details.Hint = ""

	recipient := settings.NotificationEmail
	if recipient == "" {
		recipient = settings.SmtpFromEmail
	}

	switch {
	case s.mailer == nil || !s.mailer.Configured(ctx):
		submission.EmailStatus = entity.EmailStatusNotConfigured
		details.Hint = notConfiguredHint
	case recipient == "":
		submission.EmailStatus = entity.EmailStatusNotConfigured
		details.Hint = noRecipientHint
	default:
		data := mailer.TemplateData{
			FormName:    submission.FormName,
			SubmittedAt: submission.CreatedAt.UTC().Format(time.RFC1123),
			FormData:    submission.FormData,
		}
		subject := mailer.RenderText(orDefault(settings.EmailSubjectTemplate, mailer.DefaultSubject), data)
		body := mailer.RenderHTML(orDefault(settings.EmailBodyTemplate, mailer.DefaultBody), data)

		details.Recipient = recipient
		details.Subject = subject
		details.Attempts++

		sendErr := s.mailer.Send(ctx, mailer.Message{
			To:       recipient,
			Subject:  subject,
			HTMLBody: body,
			ReplyTo:  replyAddress(submission.FormData),
		})
		if sendErr != nil {
			submission.EmailStatus = entity.EmailStatusFailed
			details.Error = sendErr.Error()
			details.Hint = mailer.HintFor(sendErr)
			s.log.Warn("FORMS", "Notification email failed", map[string]interface{}{
				"submission_id": submission.Id,
				"error":         sendErr.Error(),
			})
		} else {
			submission.EmailStatus = entity.EmailStatusSent
			sentAt := s.now().UTC()
			details.SentAt = &sentAt
		}
	}

	submission.EmailDetails = details
	return uow.FormSubmissionRepository().Update(ctx, submission)
}

// replyAddress lets the admin answer the visitor directly when the form carried an email field.
func replyAddress(formData []byte) string {
	for _, key := range []string{"email", "Email", "EMAIL"} {
		if v := gjson.GetBytes(formData, key); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}

func submissionSpecs(filter dto.FormSubmissionFilter) []specification.Specification {
	var specs []specification.Specification
	if filter.Status != "" {
		specs = append(specs, specification.ByEmailStatus{Status: filter.Status})
	}
	if filter.FormName != "" {
		specs = append(specs, specification.ByFormName{FormName: filter.FormName})
	}
	var between specification.CreatedBetween
	if filter.From != nil {
		between.From = *filter.From
	}
	if filter.To != nil {
		between.To = *filter.To
	}
	return append(specs, between)
}

func (s *formSubmissionService) GetAll(ctx context.Context, filter dto.FormSubmissionFilter) (*dto.FormSubmissionListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := submissionSpecs(filter)

	total, err := uow.FormSubmissionRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxSubmissionPage {
		limit = maxSubmissionPage
	}
	page := append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Pagination{Limit: limit, Offset: filter.Offset},
	)
	items, err := uow.FormSubmissionRepository().FindAll(ctx, page...)
	if err != nil {
		return nil, err
	}
	return &dto.FormSubmissionListResponse{Items: items, Total: total}, nil
}

func (s *formSubmissionService) Show(ctx context.Context, id int) (*entity.FormSubmission, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.FormSubmissionRepository(), "Form submission", id)
}

// Export writes every matching submission. Each top-level form field becomes a column.
func (s *formSubmissionService) Export(ctx context.Context, filter dto.FormSubmissionFilter, format string, w io.Writer) error {
	if format != "" && format != export.FormatCSV && format != export.FormatXLSX {
		return apperror.BadRequest("Unsupported export format %q; use csv or xlsx", format)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := append(submissionSpecs(filter),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
	rows, err := uow.FormSubmissionRepository().FindAll(ctx, specs...)
	if err != nil {
		return err
	}
	return export.Write(w, format, submissionTable(rows))
}

func submissionTable(rows []*entity.FormSubmission) export.Table {
	fieldSet := map[string]struct{}{}
	for _, row := range rows {
		gjson.ParseBytes(row.FormData).ForEach(func(k, _ gjson.Result) bool {
			fieldSet[k.String()] = struct{}{}
			return true
		})
	}
	fields := make([]string, 0, len(fieldSet))
	for f := range fieldSet {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	headers := append([]string{"ID", "Form", "Submitted At", "Email Status", "Email Error"}, fields...)
	table := export.Table{Sheet: submissionExportSheet, Headers: headers}
	for _, row := range rows {
		var emailError string
		if row.EmailDetails != nil {
			emailError = row.EmailDetails.Error
		}
		cells := []string{
			strconv.Itoa(row.Id),
			row.FormName,
			row.CreatedAt.UTC().Format(submissionTimeLayout),
			string(row.EmailStatus),
			emailError,
		}
		values := map[string]gjson.Result{}
		gjson.ParseBytes(row.FormData).ForEach(func(k, v gjson.Result) bool {
			values[k.String()] = v
			return true
		})
		for _, f := range fields {
			v := values[f]
			if v.IsArray() || v.IsObject() {
				cells = append(cells, v.Raw)
			} else {
				cells = append(cells, v.String())
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

// RetryEmail re-runs delivery for a submission regardless of its current status.
func (s *formSubmissionService) RetryEmail(ctx context.Context, id int) (*entity.FormSubmission, error) {
	submission, err := s.Show(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.notify(ctx, submission); err != nil {
		return nil, err
	}
	s.log.Info("FORMS", "Notification retried", map[string]interface{}{
		"submission_id": id,
		"email_status":  string(submission.EmailStatus),
	})
	return submission, nil
}

func (s *formSubmissionService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.FormSubmissionRepository(), "Form submission", id); err != nil {
		return err
	}
	return uow.FormSubmissionRepository().Delete(ctx, id)
}
