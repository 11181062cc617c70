package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"sitebuilder-be/internal/bootstrap"
	"sitebuilder-be/internal/config"
	"sitebuilder-be/internal/model"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/pkg/mailer"
	"sitebuilder-be/internal/server"
	"sitebuilder-be/pkg/database"
	"sitebuilder-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type stubMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *stubMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *stubMailer) Configured(context.Context) bool { return true }
func (m *stubMailer) Reset()                          {}

type testApp struct {
	app    *fiber.App
	mail   *stubMailer
	events *events.MemoryPublisher
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := database.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			CorsAllowedOrigins: "*",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
		},
	}
	mail := &stubMailer{}
	pub := events.NewMemoryPublisher()
	container := bootstrap.NewContainerWithOptions(db, cfg, bootstrap.Options{
		Logger:    logger.NewFileLogger(cfg.App.LogFilePath),
		Publisher: pub,
		Mailer:    mail,
	})
	t.Cleanup(container.Close)

	return &testApp{app: server.New(cfg, container).GetApp(), mail: mail, events: pub}
}

func (a *testApp) do(t *testing.T, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

type pageBody struct {
	Id        int    `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	SortOrder int    `json:"sortOrder"`
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t)
	resp, env := a.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, 200, env.Code)
}

func TestPagesCRUD(t *testing.T) {
	a := newTestApp(t)

	resp, env := a.do(t, http.MethodPost, "/api/admin/pages", `{"slug":"About Us","title":"About"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	created := decode[pageBody](t, env.Data)
	assert.Equal(t, "about-us", created.Slug)
	assert.Equal(t, "Page created", env.Message)

	// id in the body
	resp, env = a.do(t, http.MethodPut, "/api/admin/pages", `{"id":`+strconv.Itoa(created.Id)+`,"title":"About Acme"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	assert.Equal(t, "About Acme", decode[pageBody](t, env.Data).Title)

	resp, env = a.do(t, http.MethodGet, "/api/admin/pages", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pages := decode[[]pageBody](t, env.Data)
	require.Len(t, pages, 1)
	assert.Equal(t, "about-us", pages[0].Slug)

	// id as a query parameter
	resp, env = a.do(t, http.MethodDelete, "/api/admin/pages?id="+strconv.Itoa(created.Id), "")
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	assert.True(t, env.Success)

	resp, env = a.do(t, http.MethodGet, "/api/admin/pages/"+strconv.Itoa(created.Id), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusNotFound, env.Code)

	assert.NotEmpty(t, a.events.Events())
}

func TestPagesErrors(t *testing.T) {
	a := newTestApp(t)

	t.Run("validation", func(t *testing.T) {
		resp, env := a.do(t, http.MethodPost, "/api/admin/pages", `{"slug":"home"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "Validation failed")
		assert.Contains(t, env.Message, "title")
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, env := a.do(t, http.MethodPost, "/api/admin/pages", `{"slug":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid request body", env.Message)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		resp, _ := a.do(t, http.MethodPost, "/api/admin/pages", `{"slug":"home","title":"Home"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp, env := a.do(t, http.MethodPost, "/api/admin/pages", `{"slug":"Home","title":"Home again"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})

	t.Run("missing id", func(t *testing.T) {
		resp, env := a.do(t, http.MethodDelete, "/api/admin/pages", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "id is required", env.Message)
	})

	t.Run("bad id", func(t *testing.T) {
		resp, _ := a.do(t, http.MethodGet, "/api/admin/pages/abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, env := a.do(t, http.MethodGet, "/api/admin/nope", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.False(t, env.Success)
	})
}

type sectionBody struct {
	Id        int `json:"id"`
	SortOrder int `json:"sortOrder"`
}

func TestPageSectionsReorder(t *testing.T) {
	a := newTestApp(t)

	_, env := a.do(t, http.MethodPost, "/api/admin/pages", `{"slug":"home","title":"Home"}`)
	page := decode[pageBody](t, env.Data)

	ids := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, env := a.do(t, http.MethodPost, "/api/admin/page-sections",
			`{"pageId":`+strconv.Itoa(page.Id)+`,"sectionType":"text","title":"Block"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
		ids = append(ids, decode[sectionBody](t, env.Data).Id)
	}

	body := `{"action":"reorder","pageId":` + strconv.Itoa(page.Id) + `,"sectionIds":[` +
		strconv.Itoa(ids[2]) + `,` + strconv.Itoa(ids[0]) + `,` + strconv.Itoa(ids[1]) + `]}`
	resp, env := a.do(t, http.MethodPatch, "/api/admin/page-sections", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	assert.Equal(t, "Sections reordered", env.Message)

	_, env = a.do(t, http.MethodGet, "/api/admin/page-sections?pageId="+strconv.Itoa(page.Id), "")
	sections := decode[[]sectionBody](t, env.Data)
	require.Len(t, sections, 3)
	assert.Equal(t, []int{ids[2], ids[0], ids[1]}, []int{sections[0].Id, sections[1].Id, sections[2].Id})

	// A non-reorder PATCH is a partial update
	resp, env = a.do(t, http.MethodPatch, "/api/admin/page-sections/"+strconv.Itoa(ids[0]), `{"isVisible":false}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	assert.Equal(t, "Section updated", env.Message)

	resp, env = a.do(t, http.MethodPatch, "/api/admin/page-sections",
		`{"action":"reorder","pageId":`+strconv.Itoa(page.Id)+`,"sectionIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestPublicFormSubmitAndExport(t *testing.T) {
	a := newTestApp(t)

	resp, env := a.do(t, http.MethodPut, "/api/admin/site-settings",
		`{"notificationEmail":"owner@acme.test"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	resp, env = a.do(t, http.MethodPost, "/api/forms/submit",
		`{"formName":"Contact","formData":{"name":"Ada","email":"ada@example.com"}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	submitted := decode[struct {
		Id          int    `json:"id"`
		EmailStatus string `json:"emailStatus"`
	}](t, env.Data)
	assert.Positive(t, submitted.Id)
	assert.Equal(t, "sent", submitted.EmailStatus)
	require.Len(t, a.mail.sent, 1)
	assert.Equal(t, "owner@acme.test", a.mail.sent[0].To)

	resp, env = a.do(t, http.MethodPost, "/api/forms/submit", `{"formName":"Contact","formData":[1,2]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Message, "formData")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/form-submissions/export?format=csv", nil)
	exportResp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, exportResp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", exportResp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, exportResp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, exportResp.Header.Get(fiber.HeaderContentDisposition), ".csv")
	csvBody, err := io.ReadAll(exportResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(csvBody), "ada@example.com")

	resp, _ = a.do(t, http.MethodGet, "/api/admin/form-submissions/export?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/api/admin/form-submissions?from=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPublicThemeCSS(t *testing.T) {
	a := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/public/theme.css", nil)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/css; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), ":root")
}

func TestPublicPageNotFound(t *testing.T) {
	a := newTestApp(t)
	resp, env := a.do(t, http.MethodGet, "/api/public/pages/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

type headerBody struct {
	Id       int  `json:"id"`
	IsActive bool `json:"isActive"`
	NavItems []struct {
		Id int `json:"id"`
	} `json:"navItems"`
	HeaderCTAs []struct {
		Id        int  `json:"id"`
		CtaId     int  `json:"ctaId"`
		IsVisible bool `json:"isVisible"`
	} `json:"headerCTAs"`
}

func TestHeaderConfigPutActions(t *testing.T) {
	a := newTestApp(t)

	ctaIds := make([]int, 0, 2)
	for _, text := range []string{"Sign in", "Start free"} {
		resp, env := a.do(t, http.MethodPost, "/api/admin/cta-buttons", `{"text":"`+text+`","url":"/go"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
		ctaIds = append(ctaIds, decode[struct {
			Id int `json:"id"`
		}](t, env.Data).Id)
	}

	resp, env := a.do(t, http.MethodPost, "/api/admin/header-config",
		`{"navItems":[{"customText":"Docs","customUrl":"/docs"}],"headerCTAs":[{"ctaId":`+strconv.Itoa(ctaIds[0])+`}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	live := decode[headerBody](t, env.Data)
	require.Len(t, live.NavItems, 1)
	require.Len(t, live.HeaderCTAs, 1)

	t.Run("addCta keeps the live configuration", func(t *testing.T) {
		resp, env := a.do(t, http.MethodPut, "/api/admin/header-config",
			`{"action":"addCta","ctaId":`+strconv.Itoa(ctaIds[1])+`}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
		assert.Equal(t, "CTA added to header", env.Message)

		header := decode[headerBody](t, env.Data)
		assert.Equal(t, live.Id, header.Id)
		assert.Len(t, header.NavItems, 1)
		assert.Len(t, header.HeaderCTAs, 2)
	})

	t.Run("addCta twice is rejected", func(t *testing.T) {
		resp, env := a.do(t, http.MethodPut, "/api/admin/header-config",
			`{"action":"addCta","ctaId":`+strconv.Itoa(ctaIds[1])+`}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
	})

	_, env = a.do(t, http.MethodGet, "/api/admin/header-config", "")
	current := decode[headerBody](t, env.Data)
	require.Len(t, current.HeaderCTAs, 2)
	var added int
	for _, link := range current.HeaderCTAs {
		if link.CtaId == ctaIds[1] {
			added = link.Id
		}
	}
	require.NotZero(t, added)

	t.Run("toggleCtaVisibility", func(t *testing.T) {
		resp, env := a.do(t, http.MethodPut, "/api/admin/header-config",
			`{"action":"toggleCtaVisibility","headerCtaId":`+strconv.Itoa(added)+`,"isVisible":false}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
		header := decode[headerBody](t, env.Data)
		assert.Equal(t, live.Id, header.Id)
		for _, link := range header.HeaderCTAs {
			assert.Equal(t, link.Id != added, link.IsVisible)
		}
	})

	t.Run("removeCta", func(t *testing.T) {
		resp, env := a.do(t, http.MethodPut, "/api/admin/header-config",
			`{"action":"removeCta","id":`+strconv.Itoa(added)+`}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
		header := decode[headerBody](t, env.Data)
		assert.Equal(t, live.Id, header.Id)
		assert.Len(t, header.NavItems, 1)
		require.Len(t, header.HeaderCTAs, 1)
		assert.Equal(t, ctaIds[0], header.HeaderCTAs[0].CtaId)
	})

	t.Run("unknown action leaves the configuration alone", func(t *testing.T) {
		resp, env := a.do(t, http.MethodPut, "/api/admin/header-config", `{"action":"wipe"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)

		resp, env = a.do(t, http.MethodPut, "/api/admin/header-config", `{"action":"removeCta"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		_, env = a.do(t, http.MethodGet, "/api/admin/header-config", "")
		header := decode[headerBody](t, env.Data)
		assert.Equal(t, live.Id, header.Id)
		assert.True(t, header.IsActive)
		assert.Len(t, header.NavItems, 1)
		assert.Len(t, header.HeaderCTAs, 1)
	})
}
