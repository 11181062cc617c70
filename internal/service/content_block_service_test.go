package service

import (
	"context"
	"net/http"
	"testing"

	"sitebuilder-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaSectionService_Features(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	log := newTestLogger(t)
	sections := NewMediaSectionService(uowFactory, nil, log)
	chips := NewMediaSectionFeatureService(uowFactory, nil, log)

	media, err := sections.Create(ctx, &dto.CreateMediaSectionRequest{
		Headline: "See it in action",
		MediaUrl: "https://cdn.example.com/demo.png",
		Features: []*dto.MediaSectionFeatureInput{
			{Icon: "zap", Label: "Fast"},
			{Icon: "lock", Label: "Secure", Color: "green"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "media-right", media.LayoutType)
	assert.Equal(t, "image", media.MediaType)
	require.Len(t, media.Features, 2)
	assert.Equal(t, "blue", media.Features[0].Color)
	assert.Equal(t, 2, media.Features[1].SortOrder)

	added, err := chips.Create(ctx, &dto.CreateMediaSectionFeatureRequest{
		MediaSectionId:           media.Id,
		MediaSectionFeatureInput: dto.MediaSectionFeatureInput{Icon: "star", Label: "Loved"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, added.SortOrder)

	replaced, err := sections.Update(ctx, &dto.UpdateMediaSectionRequest{
		Id:       media.Id,
		Features: &[]*dto.MediaSectionFeatureInput{{Icon: "rocket", Label: "Launch"}},
	})
	require.NoError(t, err)
	require.Len(t, replaced.Features, 1)
	assert.Equal(t, "Launch", replaced.Features[0].Label)
	assert.Equal(t, "See it in action", replaced.Headline)

	_, err = chips.Create(ctx, &dto.CreateMediaSectionFeatureRequest{
		MediaSectionId:           999,
		MediaSectionFeatureInput: dto.MediaSectionFeatureInput{Icon: "star", Label: "Orphan"},
	})
	assertStatus(t, err, http.StatusNotFound)
}

func TestPricingSectionService_ReplacePlans(t *testing.T) {
	ctx := context.Background()
	svc := NewPricingSectionService(newTestFactory(t), nil, newTestLogger(t))

	section, err := svc.Create(ctx, &dto.CreatePricingSectionRequest{
		Heading: "Pricing",
		Plans:   []*dto.PricingPlanInput{{Name: "Free", Price: "0"}},
	})
	require.NoError(t, err)
	require.Len(t, section.Plans, 1)
	plan := section.Plans[0]
	assert.Equal(t, "month", plan.BillingPeriod)
	assert.Equal(t, "Get started", plan.CtaText)
	assert.Empty(t, plan.Features)

	updated, err := svc.Update(ctx, &dto.UpdatePricingSectionRequest{
		Id: section.Id,
		Plans: &[]*dto.PricingPlanInput{
			{Name: "Pro", Price: "19", Features: []string{"SSO"}},
			{Name: "Team", Price: "49", IsPopular: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Plans, 2)
	assert.Equal(t, "Pro", updated.Plans[0].Name)
	assert.Equal(t, []string{"SSO"}, updated.Plans[0].Features)
	assert.True(t, updated.Plans[1].IsPopular)

	unchanged, err := svc.Update(ctx, &dto.UpdatePricingSectionRequest{Id: section.Id, Heading: ptr("Plans")})
	require.NoError(t, err)
	assert.Equal(t, "Plans", unchanged.Heading)
	assert.Len(t, unchanged.Plans, 2)
}

func TestMenuService_Nesting(t *testing.T) {
	ctx := context.Background()
	svc := NewMenuService(newTestFactory(t), nil, newTestLogger(t))

	menu, err := svc.Create(ctx, &dto.MenuRequest{
		Name: ptr("Products"),
		Items: &[]*dto.MenuItemInput{
			{Label: "Platform", Url: "/platform", Children: []*dto.MenuItemInput{
				{Label: "Workflows", Url: "/platform/workflows"},
			}},
			{Label: "Docs", Url: "https://docs.example.com", Target: "_blank"},
		},
	})
	require.NoError(t, err)
	require.Len(t, menu.Items, 2)

	platform := menu.Items[0]
	assert.Equal(t, "Platform", platform.Label)
	assert.Equal(t, "_self", platform.Target)
	assert.Nil(t, platform.ParentId)
	require.Len(t, platform.Children, 1)
	assert.Equal(t, "Workflows", platform.Children[0].Label)
	require.NotNil(t, platform.Children[0].ParentId)
	assert.Equal(t, platform.Id, *platform.Children[0].ParentId)

	docs := menu.Items[1]
	assert.Equal(t, "Docs", docs.Label)
	assert.Equal(t, "_blank", docs.Target)
	assert.Empty(t, docs.Children)

	_, err = svc.Create(ctx, &dto.MenuRequest{Name: ptr("Products")})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(ctx, &dto.MenuRequest{
		Name: ptr("Deep"),
		Items: &[]*dto.MenuItemInput{
			{Label: "A", Url: "/a", Children: []*dto.MenuItemInput{
				{Label: "B", Url: "/b", Children: []*dto.MenuItemInput{{Label: "C", Url: "/c"}}},
			}},
		},
	})
	assertStatus(t, err, http.StatusBadRequest)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPageBuilderService_Catalog(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	log := newTestLogger(t)
	heroes := NewHeroSectionService(uowFactory, nil, log)
	builder := NewPageBuilderService(uowFactory)

	_, err := heroes.Create(ctx, &dto.HeroSectionRequest{Name: ptr("Launch"), Headline: ptr("Launch day")})
	require.NoError(t, err)

	items, err := builder.Catalog(ctx, CatalogHeroSections)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Launch", items[0].Name)

	empty, err := builder.Catalog(ctx, CatalogPricingSections)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = builder.Catalog(ctx, "carousels")
	assertStatus(t, err, http.StatusBadRequest)
}
