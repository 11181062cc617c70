package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFeatureMapper_TranslatesColumns(t *testing.T) {
	m := NewGlobalFeatureMapper()
	in := &entity.GlobalFeature{
		Id:          4,
		Title:       "Workflow builder",
		Description: "Drag and drop",
		IconName:    "lucide:workflow",
		Category:    entity.FeatureCategoryAutomation,
		SortOrder:   2,
		IsVisible:   true,
	}

	row := m.ToModel(in)
	assert.Equal(t, "Workflow builder", row.Name)
	assert.Equal(t, "lucide:workflow", row.IconUrl)
	assert.True(t, row.IsActive)
	assert.Equal(t, "automation", row.Category)

	assert.Equal(t, in, m.ToEntity(row))
}

func TestFeatureGroupMapper_HeadingFallsBackToName(t *testing.T) {
	m := NewFeatureGroupMapper()
	desc := "All the integrations"

	out := m.ToEntity(&model.FeatureGroup{Id: 1, Name: "Integrations", Description: &desc, LayoutType: "grid"})

	assert.Equal(t, "Integrations", out.Heading)
	assert.Equal(t, "All the integrations", out.Subheading)
	assert.Empty(t, out.GroupItems)
	assert.NotNil(t, out.GroupItems)

	row := m.ToModel(&entity.FeatureGroup{Name: "internal", Heading: "Public", Subheading: ""})
	require.NotNil(t, row.Heading)
	assert.Equal(t, "Public", *row.Heading)
	assert.Nil(t, row.Description)

	same := m.ToModel(&entity.FeatureGroup{Name: "Why us", Heading: "Why us"})
	require.NotNil(t, same.Heading)
	assert.Equal(t, "Why us", *same.Heading)
}

func TestFeatureGroupMapper_NestedItems(t *testing.T) {
	m := NewFeatureGroupMapper()
	row := &model.FeatureGroup{
		Id:   3,
		Name: "Core",
		GroupItems: []model.FeatureGroupItem{
			{Id: 10, FeatureGroupId: 3, FeatureId: 7, SortOrder: 1, IsVisible: true,
				Feature: &model.GlobalFeature{Id: 7, Name: "Search", IconUrl: "search", IsActive: true}},
		},
		PageAssignments: []model.PageFeatureGroup{
			{Id: 5, PageId: 2, FeatureGroupId: 3, Page: &model.Page{Id: 2, Slug: "home", Title: "Home"}},
		},
	}

	out := m.ToEntity(row)

	require.Len(t, out.GroupItems, 1)
	assert.Equal(t, "Search", out.GroupItems[0].Feature.Title)
	assert.Equal(t, "search", out.GroupItems[0].Feature.IconName)
	require.Len(t, out.PageAssignments, 1)
	assert.Equal(t, "home", out.PageAssignments[0].Page.Slug)
}

func TestPageSectionMapper(t *testing.T) {
	m := NewPageSectionMapper()
	heroId := 8

	out := m.ToEntity(&model.PageSection{Id: 1, PageId: 2, SectionType: "hero", HeroSectionId: &heroId, SortOrder: 1})
	assert.Equal(t, entity.SectionTypeHero, out.Block.Type())
	assert.Equal(t, 8, out.Block.RefId())

	row := m.ToModel(&entity.PageSection{PageId: 2, Block: entity.MediaBlock(4)})
	assert.Equal(t, "media", row.SectionType)
	require.NotNil(t, row.MediaSectionId)
	assert.Equal(t, 4, *row.MediaSectionId)
	assert.Nil(t, row.HeroSectionId)

	broken := m.ToEntity(&model.PageSection{Id: 2, SectionType: "hero"})
	assert.True(t, broken.Block.IsZero())
}

func TestMenuMapper_NestsItems(t *testing.T) {
	parent := 1
	out := NewMenuMapper().ToEntity(&model.Menu{
		Id:   1,
		Name: "Product",
		Items: []model.MenuItem{
			{Id: 1, MenuId: 1, Label: "Platform"},
			{Id: 2, MenuId: 1, Label: "Search", ParentId: &parent},
		},
	})

	require.Len(t, out.Items, 1)
	require.Len(t, out.Items[0].Children, 1)
	assert.Equal(t, "Search", out.Items[0].Children[0].Label)
}

func TestFormSubmissionMapper_EmailDetails(t *testing.T) {
	m := NewFormSubmissionMapper()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &entity.FormSubmission{
		FormName:    "contact",
		FormData:    json.RawMessage(`{"email":"a@b.co"}`),
		EmailStatus: entity.EmailStatusFailed,
		EmailDetails: &entity.EmailDetails{
			Error:       "535 auth failed",
			Attempts:    2,
			AttemptedAt: &now,
		},
	}

	out := m.ToEntity(m.ToModel(in))

	assert.JSONEq(t, `{"email":"a@b.co"}`, string(out.FormData))
	assert.Equal(t, entity.EmailStatusFailed, out.EmailStatus)
	require.NotNil(t, out.EmailDetails)
	assert.Equal(t, 2, out.EmailDetails.Attempts)
	assert.True(t, now.Equal(*out.EmailDetails.AttemptedAt))

	pending := m.ToEntity(m.ToModel(&entity.FormSubmission{FormName: "x", FormData: json.RawMessage(`{}`)}))
	assert.Nil(t, pending.EmailDetails)
}

func TestSiteSettingsMapper_NilMaps(t *testing.T) {
	m := NewSiteSettingsMapper()
	out := m.ToEntity(m.ToModel(&entity.SiteSettings{SiteName: "Acme"}))

	assert.NotNil(t, out.SocialLinks)
	assert.NotNil(t, out.DesignTokens)
	assert.Equal(t, "Acme", out.SiteName)
}
