package service

import (
	"context"
	"net/http"
	"testing"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type featureFixture struct {
	features    IGlobalFeatureService
	groups      IFeatureGroupService
	items       IFeatureGroupItemService
	assignments IPageFeatureGroupService
	pages       IPageService
}

func newFeatureFixture(t *testing.T, uowFactory unitofwork.RepositoryFactory) featureFixture {
	log := newTestLogger(t)
	return featureFixture{
		features:    NewGlobalFeatureService(uowFactory, nil, log),
		groups:      NewFeatureGroupService(uowFactory, nil, log),
		items:       NewFeatureGroupItemService(uowFactory, nil, log),
		assignments: NewPageFeatureGroupService(uowFactory, nil, log),
		pages:       NewPageService(uowFactory, nil, log),
	}
}

func TestGlobalFeatureService_IconNameRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFeatureFixture(t, newTestFactory(t))

	for _, icon := range []string{"zap", "lucide:bar-chart-3", "HiOutlineChartBar", "FaRobot"} {
		t.Run(icon, func(t *testing.T) {
			created, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{
				Title:    "Feature " + icon,
				IconName: icon,
				Category: "ai",
			})
			require.NoError(t, err)

			shown, err := f.features.Show(ctx, created.Id)
			require.NoError(t, err)
			assert.Equal(t, icon, shown.IconName)
		})
	}

	t.Run("category filter", func(t *testing.T) {
		_, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{Title: "SSO", IconName: "lock", Category: "security"})
		require.NoError(t, err)

		security, err := f.features.GetAll(ctx, "security")
		require.NoError(t, err)
		require.Len(t, security, 1)
		assert.Equal(t, "SSO", security[0].Title)
	})
}

func TestFeatureGroupItemService_DuplicateMembership(t *testing.T) {
	ctx := context.Background()
	f := newFeatureFixture(t, newTestFactory(t))

	group, err := f.groups.Create(ctx, &dto.CreateFeatureGroupRequest{Name: "Core"})
	require.NoError(t, err)
	feature, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{Title: "Search", IconName: "search", Category: "ai"})
	require.NoError(t, err)

	first, err := f.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: group.Id, FeatureId: feature.Id})
	require.NoError(t, err)
	assert.Equal(t, 1, first.SortOrder)

	_, err = f.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: group.Id, FeatureId: feature.Id})
	appErr := assertStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, duplicateGroupItemMessage, appErr.Message)

	_, err = f.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: group.Id, FeatureId: 999})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = f.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: 999, FeatureId: feature.Id})
	assertStatus(t, err, http.StatusNotFound)

	items, err := f.items.GetAll(ctx, group.Id)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPageFeatureGroupService_AssignmentRules(t *testing.T) {
	ctx := context.Background()
	f := newFeatureFixture(t, newTestFactory(t))

	page, err := f.pages.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home"})
	require.NoError(t, err)
	group, err := f.groups.Create(ctx, &dto.CreateFeatureGroupRequest{Name: "Core", Heading: "Core features"})
	require.NoError(t, err)

	shown, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{Title: "Shown", IconName: "zap", Category: "ai"})
	require.NoError(t, err)
	hiddenGlobally, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{Title: "Hidden", IconName: "zap", Category: "ai", IsVisible: ptr(false)})
	require.NoError(t, err)
	hiddenInGroup, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{Title: "Muted", IconName: "zap", Category: "ai"})
	require.NoError(t, err)

	for _, id := range []int{shown.Id, hiddenGlobally.Id} {
		_, err := f.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: group.Id, FeatureId: id})
		require.NoError(t, err)
	}
	_, err = f.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: group.Id, FeatureId: hiddenInGroup.Id, IsVisible: ptr(false)})
	require.NoError(t, err)

	assignment, err := f.assignments.Create(ctx, &dto.CreatePageFeatureGroupRequest{PageId: page.Id, FeatureGroupId: group.Id})
	require.NoError(t, err)
	assert.Equal(t, 1, assignment.SortOrder)
	require.NotNil(t, assignment.FeatureGroup)
	require.Len(t, assignment.FeatureGroup.Items, 1)
	assert.Equal(t, "Shown", assignment.FeatureGroup.Items[0].Title)

	_, err = f.assignments.Create(ctx, &dto.CreatePageFeatureGroupRequest{PageId: page.Id, FeatureGroupId: group.Id})
	appErr := assertStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, duplicateAssignmentMessage, appErr.Message)

	listed, err := f.assignments.GetAll(ctx, page.Id)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestGlobalFeatureService_FieldsRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFeatureFixture(t, newTestFactory(t))

	created, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{
		Title:     "Audit log",
		IconName:  "shield",
		Category:  "security",
		IsVisible: ptr(false),
	})
	require.NoError(t, err)

	all, err := f.features.GetAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.Id, all[0].Id)
	assert.Equal(t, "Audit log", all[0].Title)
	assert.Equal(t, "shield", all[0].IconName)
	assert.False(t, all[0].IsVisible)
}

func TestFeatureGroupItemService_SequentialSortOrder(t *testing.T) {
	ctx := context.Background()
	f := newFeatureFixture(t, newTestFactory(t))

	group, err := f.groups.Create(ctx, &dto.CreateFeatureGroupRequest{Name: "Core"})
	require.NoError(t, err)

	for want, title := range []string{"One", "Two", "Three"} {
		feature, err := f.features.Create(ctx, &dto.CreateGlobalFeatureRequest{Title: title, IconName: "zap", Category: "ai"})
		require.NoError(t, err)
		item, err := f.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: group.Id, FeatureId: feature.Id})
		require.NoError(t, err)
		assert.Equal(t, want+1, item.SortOrder)
	}

	shown, err := f.groups.Show(ctx, group.Id)
	require.NoError(t, err)
	assert.Len(t, shown.GroupItems, 3)
}

func TestFeatureGroupService_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFeatureFixture(t, newTestFactory(t))

	group, err := f.groups.Create(ctx, &dto.CreateFeatureGroupRequest{
		Name:       "Core",
		Heading:    "Core features",
		Subheading: "Everything you need",
	})
	require.NoError(t, err)
	assert.True(t, group.IsActive)

	updated, err := f.groups.Update(ctx, &dto.UpdateFeatureGroupRequest{Id: group.Id, IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Core", updated.Name)
	assert.Equal(t, "Core features", updated.Heading)
	assert.Equal(t, "Everything you need", updated.Subheading)

	_, err = f.groups.Update(ctx, &dto.UpdateFeatureGroupRequest{Id: 999, IsActive: ptr(true)})
	assertStatus(t, err, http.StatusNotFound)

	t.Run("renaming keeps the public heading", func(t *testing.T) {
		whyUs, err := f.groups.Create(ctx, &dto.CreateFeatureGroupRequest{Name: "Why us", Heading: "Why us"})
		require.NoError(t, err)

		renamed, err := f.groups.Update(ctx, &dto.UpdateFeatureGroupRequest{Id: whyUs.Id, Name: ptr("homepage-why-us-v2")})
		require.NoError(t, err)
		assert.Equal(t, "homepage-why-us-v2", renamed.Name)
		assert.Equal(t, "Why us", renamed.Heading)

		shown, err := f.groups.Show(ctx, whyUs.Id)
		require.NoError(t, err)
		assert.Equal(t, "Why us", shown.Heading)
	})

	t.Run("a group created without heading keeps its first name as heading", func(t *testing.T) {
		plain, err := f.groups.Create(ctx, &dto.CreateFeatureGroupRequest{Name: "Integrations"})
		require.NoError(t, err)
		assert.Equal(t, "Integrations", plain.Heading)

		renamed, err := f.groups.Update(ctx, &dto.UpdateFeatureGroupRequest{Id: plain.Id, Name: ptr("integrations-v2")})
		require.NoError(t, err)
		assert.Equal(t, "Integrations", renamed.Heading)
	})
}
