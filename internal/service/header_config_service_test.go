package service

import (
	"context"
	"net/http"
	"testing"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderConfigService_SingleActive(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	log := newTestLogger(t)
	headers := NewHeaderConfigService(uowFactory, nil, log)
	pages := NewPageService(uowFactory, nil, log)
	ctas := NewCTAService(uowFactory, nil, log)

	none, err := headers.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	home, err := pages.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home"})
	require.NoError(t, err)
	signup, err := ctas.Create(ctx, &dto.CreateCTARequest{Text: "Sign up", Url: "/signup"})
	require.NoError(t, err)
	demo, err := ctas.Create(ctx, &dto.CreateCTARequest{Text: "Demo", Url: "/demo"})
	require.NoError(t, err)

	first, err := headers.Replace(ctx, 0, &dto.HeaderConfigRequest{
		NavItems:   []*dto.HeaderNavItemInput{{PageId: ptr(home.Id)}, {CustomText: ptr("Docs"), CustomUrl: ptr("https://docs.example.com")}},
		HeaderCTAs: []*dto.HeaderCTAInput{{CtaId: signup.Id}},
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "#ffffff", first.BackgroundColor)
	require.Len(t, first.NavItems, 2)
	assert.Equal(t, 1, first.NavItems[0].SortOrder)
	assert.Equal(t, 2, first.NavItems[1].SortOrder)

	second, err := headers.Replace(ctx, 0, &dto.HeaderConfigRequest{BackgroundColor: "#000000", IsSticky: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, "#000000", second.BackgroundColor)
	assert.Empty(t, second.NavItems)

	active, err := uowFactory.NewUnitOfWork(ctx).HeaderConfigRepository().Count(ctx, specification.Active{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	t.Run("saving an old configuration reactivates it alone", func(t *testing.T) {
		restored, err := headers.Replace(ctx, first.Id, &dto.HeaderConfigRequest{
			HeaderCTAs: []*dto.HeaderCTAInput{{CtaId: demo.Id}},
		})
		require.NoError(t, err)
		assert.Equal(t, first.Id, restored.Id)
		assert.Empty(t, restored.NavItems)
		require.Len(t, restored.HeaderCTAs, 1)
		assert.Equal(t, demo.Id, restored.HeaderCTAs[0].CtaId)

		active, err := uowFactory.NewUnitOfWork(ctx).HeaderConfigRepository().Count(ctx, specification.Active{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, active)
	})

	t.Run("the same CTA twice is rejected", func(t *testing.T) {
		_, err := headers.Replace(ctx, 0, &dto.HeaderConfigRequest{
			HeaderCTAs: []*dto.HeaderCTAInput{{CtaId: signup.Id}, {CtaId: signup.Id}},
		})
		assertStatus(t, err, http.StatusBadRequest)

		_, err = headers.AddCta(ctx, &dto.AddHeaderCTARequest{CtaId: demo.Id})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("add and toggle a CTA", func(t *testing.T) {
		withSignup, err := headers.AddCta(ctx, &dto.AddHeaderCTARequest{CtaId: signup.Id})
		require.NoError(t, err)
		require.Len(t, withSignup.HeaderCTAs, 2)
		added := withSignup.HeaderCTAs[1]
		assert.Equal(t, 2, added.SortOrder)
		assert.True(t, added.IsVisible)

		toggled, err := headers.ToggleCtaVisibility(ctx, added.Id, nil)
		require.NoError(t, err)
		assert.False(t, toggled.HeaderCTAs[1].IsVisible)

		forced, err := headers.ToggleCtaVisibility(ctx, added.Id, ptr(true))
		require.NoError(t, err)
		assert.True(t, forced.HeaderCTAs[1].IsVisible)

		removed, err := headers.RemoveCta(ctx, added.Id)
		require.NoError(t, err)
		assert.Len(t, removed.HeaderCTAs, 1)
	})
}
