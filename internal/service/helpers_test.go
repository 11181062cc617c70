package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"sitebuilder-be/internal/model"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/pkg/mailer"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	db, err := database.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))
	return unitofwork.NewRepositoryFactory(db)
}

func newTestLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewFileLogger(filepath.Join(t.TempDir(), "app.log"))
}

func ptr[T any](v T) *T { return &v }

// assertStatus checks that err is an AppError with the given HTTP status.
func assertStatus(t *testing.T, err error, status int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected an AppError, got %T: %v", err, err)
	assert.Equal(t, status, appErr.Status)
	return appErr
}

// fakeMailer records messages and fails with sendErr when it is set.
type fakeMailer struct {
	mu         sync.Mutex
	configured bool
	sendErr    error
	sent       []mailer.Message
	resets     int
}

func (m *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.configured {
		return mailer.ErrNotConfigured
	}
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) Configured(context.Context) bool { return m.configured }

func (m *fakeMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
}

var errDialFailed = errors.New("dial tcp 127.0.0.1:2525: connect: connection refused")
