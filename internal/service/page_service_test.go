package service

import (
	"context"
	"net/http"
	"testing"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageService_Create(t *testing.T) {
	ctx := context.Background()
	publisher := events.NewMemoryPublisher()
	svc := NewPageService(newTestFactory(t), publisher, newTestLogger(t))

	t.Run("normalizes slug and appends to the end", func(t *testing.T) {
		first, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "  About Us ", Title: "About"})
		require.NoError(t, err)
		assert.Equal(t, "about-us", first.Slug)
		assert.Equal(t, 1, first.SortOrder)

		second, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "pricing", Title: "Pricing"})
		require.NoError(t, err)
		assert.Equal(t, 2, second.SortOrder)
	})

	t.Run("sortOrder follows the current maximum", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "blog", Title: "Blog", SortOrder: ptr(10)})
		require.NoError(t, err)

		next, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "careers", Title: "Careers"})
		require.NoError(t, err)
		assert.Equal(t, 11, next.SortOrder)
	})

	t.Run("rejects a duplicate slug", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "About-Us", Title: "Again"})
		appErr := assertStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, duplicateSlugMessage, appErr.Message)
	})

	t.Run("rejects a slug with no letters or digits", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "!!!", Title: "Nothing"})
		assertStatus(t, err, http.StatusBadRequest)
	})

	assert.NotEmpty(t, publisher.Events())
	assert.Equal(t, events.SiteContentChanged, publisher.Events()[0].EventType())
}

func TestPageService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewPageService(newTestFactory(t), nil, newTestLogger(t))

	home, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home"})
	require.NoError(t, err)
	about, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "about", Title: "About"})
	require.NoError(t, err)

	t.Run("only present keys change", func(t *testing.T) {
		updated, err := svc.Update(ctx, &dto.UpdatePageRequest{Id: about.Id, ShowInHeader: ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, "about", updated.Slug)
		assert.Equal(t, "About", updated.Title)
		assert.True(t, updated.ShowInHeader)
	})

	t.Run("keeping its own slug is allowed", func(t *testing.T) {
		_, err := svc.Update(ctx, &dto.UpdatePageRequest{Id: about.Id, Slug: ptr("about")})
		assert.NoError(t, err)
	})

	t.Run("taking another page's slug is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, &dto.UpdatePageRequest{Id: about.Id, Slug: ptr(home.Slug)})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		_, err := svc.Update(ctx, &dto.UpdatePageRequest{Id: 999, Title: ptr("x")})
		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestPageService_GetAllAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewPageService(newTestFactory(t), nil, newTestLogger(t))

	b, err := svc.Create(ctx, &dto.CreatePageRequest{Slug: "b", Title: "B", SortOrder: ptr(2)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreatePageRequest{Slug: "a", Title: "A", SortOrder: ptr(1)})
	require.NoError(t, err)

	pages, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "a", pages[0].Slug)
	assert.Equal(t, "b", pages[1].Slug)

	require.NoError(t, svc.Delete(ctx, b.Id))
	_, err = svc.Show(ctx, b.Id)
	assertStatus(t, err, http.StatusNotFound)
	assertStatus(t, svc.Delete(ctx, b.Id), http.StatusNotFound)
}
