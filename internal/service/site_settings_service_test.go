package service

import (
	"context"
	"net/http"
	"testing"

	"sitebuilder-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	m := &fakeMailer{}
	svc := NewSiteSettingsService(uowFactory, m, nil, newTestLogger(t))

	initial, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Site", initial.SiteName)
	assert.False(t, initial.SmtpPasswordSet)

	t.Run("non-SMTP changes keep the transport", func(t *testing.T) {
		updated, err := svc.Update(ctx, &dto.UpdateSiteSettingsRequest{
			SiteName:    ptr("Acme"),
			SocialLinks: &map[string]string{"x": "https://x.com/acme"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme", updated.SiteName)
		assert.Equal(t, 0, m.resets)
	})

	t.Run("SMTP changes reset the transport", func(t *testing.T) {
		updated, err := svc.Update(ctx, &dto.UpdateSiteSettingsRequest{
			SmtpHost:      ptr("smtp.example.com"),
			SmtpPassword:  ptr("secret"),
			SmtpFromEmail: ptr("noreply@example.com"),
		})
		require.NoError(t, err)
		assert.True(t, updated.SmtpPasswordSet)
		assert.Equal(t, "Acme", updated.SiteName)
		assert.Equal(t, 1, m.resets)

		loaded, err := SMTPSettingsLoader(uowFactory)(ctx)
		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com", loaded.Host)
		assert.Equal(t, 587, loaded.Port)
		assert.Equal(t, "secret", loaded.Password)
	})

	t.Run("invalid design token names are rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, &dto.UpdateSiteSettingsRequest{DesignTokens: &map[string]string{"Bad Name": "1px"}})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("design tokens reach the theme", func(t *testing.T) {
		_, err := svc.Update(ctx, &dto.UpdateSiteSettingsRequest{DesignTokens: &map[string]string{"color-primary": "#ff0000"}})
		require.NoError(t, err)

		css, err := NewPublicSiteService(uowFactory).ThemeCSS(ctx)
		require.NoError(t, err)
		assert.Contains(t, css, "--color-primary: #ff0000;")
	})
}

func TestSiteSettingsService_SendTestEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		svc := NewSiteSettingsService(newTestFactory(t), &fakeMailer{}, nil, newTestLogger(t))
		res, err := svc.SendTestEmail(ctx, &dto.TestEmailRequest{To: "me@example.com"})
		require.NoError(t, err)
		assert.False(t, res.Sent)
		assert.NotEmpty(t, res.Hint)
	})

	t.Run("failure carries a hint", func(t *testing.T) {
		m := &fakeMailer{configured: true, sendErr: errDialFailed}
		svc := NewSiteSettingsService(newTestFactory(t), m, nil, newTestLogger(t))
		res, err := svc.SendTestEmail(ctx, &dto.TestEmailRequest{To: "me@example.com"})
		require.NoError(t, err)
		assert.False(t, res.Sent)
		assert.Equal(t, errDialFailed.Error(), res.Message)
		assert.Contains(t, res.Hint, "Could not reach the SMTP server")
	})

	t.Run("sent", func(t *testing.T) {
		m := &fakeMailer{configured: true}
		svc := NewSiteSettingsService(newTestFactory(t), m, nil, newTestLogger(t))
		res, err := svc.SendTestEmail(ctx, &dto.TestEmailRequest{To: "me@example.com"})
		require.NoError(t, err)
		assert.True(t, res.Sent)
		require.Len(t, m.sent, 1)
		assert.Equal(t, "Test email from My Site", m.sent[0].Subject)
	})
}
