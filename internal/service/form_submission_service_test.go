package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormService(t *testing.T, uowFactory unitofwork.RepositoryFactory, m *fakeMailer) *formSubmissionService {
	svc := NewFormSubmissionService(uowFactory, m, newTestLogger(t)).(*formSubmissionService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func configureNotifications(t *testing.T, uowFactory unitofwork.RepositoryFactory, m *fakeMailer, recipient string) {
	t.Helper()
	settings := NewSiteSettingsService(uowFactory, m, nil, newTestLogger(t))
	_, err := settings.Update(context.Background(), &dto.UpdateSiteSettingsRequest{
		SiteName:             ptr("Acme"),
		NotificationEmail:    ptr(recipient),
		EmailSubjectTemplate: ptr("New {{FORM_NAME}} from Acme"),
	})
	require.NoError(t, err)
}

func submit(t *testing.T, svc IFormSubmissionService, form string, data map[string]interface{}) *dto.SubmitFormResponse {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	res, err := svc.Submit(context.Background(), &dto.SubmitFormRequest{FormName: form, FormData: raw}, "203.0.113.9", "test-agent")
	require.NoError(t, err)
	return res
}

func TestFormSubmissionService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stored as not_configured without SMTP", func(t *testing.T) {
		uowFactory := newTestFactory(t)
		svc := newFormService(t, uowFactory, &fakeMailer{})

		res := submit(t, svc, "contact", map[string]interface{}{"name": "Ana"})
		assert.Equal(t, entity.EmailStatusNotConfigured, res.EmailStatus)

		stored, err := svc.Show(ctx, res.Id)
		require.NoError(t, err)
		require.NotNil(t, stored.EmailDetails)
		assert.Equal(t, notConfiguredHint, stored.EmailDetails.Hint)
		require.NotNil(t, stored.IpAddress)
		assert.Equal(t, "203.0.113.9", *stored.IpAddress)
	})

	t.Run("no recipient keeps it not_configured", func(t *testing.T) {
		svc := newFormService(t, newTestFactory(t), &fakeMailer{configured: true})

		res := submit(t, svc, "contact", map[string]interface{}{"name": "Ana"})
		assert.Equal(t, entity.EmailStatusNotConfigured, res.EmailStatus)
	})

	t.Run("sent with rendered subject and reply-to", func(t *testing.T) {
		uowFactory := newTestFactory(t)
		m := &fakeMailer{configured: true}
		configureNotifications(t, uowFactory, m, "owner@example.com")
		svc := newFormService(t, uowFactory, m)

		res := submit(t, svc, "demo-request", map[string]interface{}{"email": "visitor@example.com", "company": "Globex"})
		assert.Equal(t, entity.EmailStatusSent, res.EmailStatus)

		require.Len(t, m.sent, 1)
		msg := m.sent[0]
		assert.Equal(t, "owner@example.com", msg.To)
		assert.Equal(t, "New demo-request from Acme", msg.Subject)
		assert.Equal(t, "visitor@example.com", msg.ReplyTo)
		assert.Contains(t, msg.HTMLBody, "Globex")

		stored, err := svc.Show(ctx, res.Id)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.EmailDetails.Attempts)
		assert.NotNil(t, stored.EmailDetails.SentAt)
	})

	t.Run("send failure is stored with a hint", func(t *testing.T) {
		uowFactory := newTestFactory(t)
		m := &fakeMailer{configured: true, sendErr: errDialFailed}
		configureNotifications(t, uowFactory, m, "owner@example.com")
		svc := newFormService(t, uowFactory, m)

		res := submit(t, svc, "contact", map[string]interface{}{"name": "Ana"})
		assert.Equal(t, entity.EmailStatusFailed, res.EmailStatus)

		stored, err := svc.Show(ctx, res.Id)
		require.NoError(t, err)
		assert.Equal(t, errDialFailed.Error(), stored.EmailDetails.Error)
		assert.Contains(t, stored.EmailDetails.Hint, "Could not reach the SMTP server")

		t.Run("retry after the server recovers", func(t *testing.T) {
			m.sendErr = nil
			retried, err := svc.RetryEmail(ctx, res.Id)
			require.NoError(t, err)
			assert.Equal(t, entity.EmailStatusSent, retried.EmailStatus)
			assert.Equal(t, 2, retried.EmailDetails.Attempts)
			assert.Empty(t, retried.EmailDetails.Error)
		})
	})

	t.Run("formData must be an object", func(t *testing.T) {
		svc := newFormService(t, newTestFactory(t), &fakeMailer{})
		for _, raw := range []string{`[1,2]`, `"text"`, `{bad`} {
			_, err := svc.Submit(ctx, &dto.SubmitFormRequest{FormName: "contact", FormData: json.RawMessage(raw)}, "", "")
			assertStatus(t, err, http.StatusBadRequest)
		}
	})
}

func TestFormSubmissionService_ListAndExport(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := newFormService(t, uowFactory, &fakeMailer{})

	submit(t, svc, "contact", map[string]interface{}{"name": "Ana", "email": "ana@example.com"})
	submit(t, svc, "newsletter", map[string]interface{}{"email": "bo@example.com"})
	submit(t, svc, "contact", map[string]interface{}{"name": "Cy", "tags": []string{"a", "b"}})

	t.Run("filter by form name", func(t *testing.T) {
		list, err := svc.GetAll(ctx, dto.FormSubmissionFilter{FormName: "contact"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, list.Total)
		assert.Len(t, list.Items, 2)
	})

	t.Run("filter by status and paginate", func(t *testing.T) {
		list, err := svc.GetAll(ctx, dto.FormSubmissionFilter{Status: string(entity.EmailStatusNotConfigured), Limit: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 3, list.Total)
		assert.Len(t, list.Items, 1)

		none, err := svc.GetAll(ctx, dto.FormSubmissionFilter{Status: string(entity.EmailStatusSent)})
		require.NoError(t, err)
		assert.EqualValues(t, 0, none.Total)
	})

	t.Run("csv has one column per form field", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Export(ctx, dto.FormSubmissionFilter{}, "csv", &buf))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, []string{"ID", "Form", "Submitted At", "Email Status", "Email Error", "email", "name", "tags"}, records[0])

		var tagged []string
		for _, r := range records[1:] {
			if r[7] != "" {
				tagged = r
			}
		}
		require.NotNil(t, tagged)
		assert.Equal(t, `["a","b"]`, tagged[7])
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		assertStatus(t, svc.Export(ctx, dto.FormSubmissionFilter{}, "pdf", &buf), http.StatusBadRequest)
	})

	t.Run("delete", func(t *testing.T) {
		list, err := svc.GetAll(ctx, dto.FormSubmissionFilter{})
		require.NoError(t, err)
		id := list.Items[0].Id
		require.NoError(t, svc.Delete(ctx, id))
		_, err = svc.Show(ctx, id)
		assertStatus(t, err, http.StatusNotFound)
	})
}
