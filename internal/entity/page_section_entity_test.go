package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseSectionContent(t *testing.T) {
	tests := []struct {
		name        string
		sectionType string
		refs        SectionRefs
		wantErr     error
		wantType    SectionType
		wantRef     int
	}{
		{"hero with hero id", "hero", SectionRefs{HeroSectionId: intPtr(3)}, nil, SectionTypeHero, 3},
		{"features with group id", "features", SectionRefs{FeatureGroupId: intPtr(7)}, nil, SectionTypeFeatures, 7},
		{"media with media id", "media", SectionRefs{MediaSectionId: intPtr(1)}, nil, SectionTypeMedia, 1},
		{"pricing with pricing id", "pricing", SectionRefs{PricingSectionId: intPtr(2)}, nil, SectionTypePricing, 2},
		{"faq with faq id", "faq", SectionRefs{FaqSectionId: intPtr(4)}, nil, SectionTypeFaq, 4},
		{"text without refs", "text", SectionRefs{}, nil, SectionTypeText, 0},
		{"hero missing id", "hero", SectionRefs{}, ErrSectionRefMismatch, "", 0},
		{"hero with zero id", "hero", SectionRefs{HeroSectionId: intPtr(0)}, ErrSectionRefMismatch, "", 0},
		{"hero with group id", "hero", SectionRefs{FeatureGroupId: intPtr(7)}, ErrSectionRefMismatch, "", 0},
		{"two refs", "media", SectionRefs{MediaSectionId: intPtr(1), HeroSectionId: intPtr(2)}, ErrSectionRefMismatch, "", 0},
		{"text with a ref", "text", SectionRefs{MediaSectionId: intPtr(1)}, ErrSectionRefMismatch, "", 0},
		{"unknown type", "carousel", SectionRefs{}, ErrUnknownSectionType, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseSectionContent(tt.sectionType, tt.refs)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.True(t, c.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, c.Type())
			assert.Equal(t, tt.wantRef, c.RefId())
		})
	}
}

func TestSectionContentRefs(t *testing.T) {
	refs := MediaBlock(9).Refs()

	require.NotNil(t, refs.MediaSectionId)
	assert.Equal(t, 9, *refs.MediaSectionId)
	assert.Nil(t, refs.HeroSectionId)
	assert.Nil(t, refs.FeatureGroupId)
	assert.Nil(t, refs.PricingSectionId)
	assert.Nil(t, refs.FaqSectionId)

	assert.Equal(t, SectionRefs{}, TextBlock().Refs())
}

func TestPageSectionMarshalJSON(t *testing.T) {
	title := "Why us"
	s := PageSection{Id: 5, PageId: 2, Block: FeatureGroupBlock(11), SortOrder: 3, IsVisible: true, Title: &title}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "features", out["sectionType"])
	assert.Equal(t, float64(11), out["featureGroupId"])
	assert.Nil(t, out["heroSectionId"])
	assert.Equal(t, "Why us", out["title"])
	_, hasGroup := out["featureGroup"]
	assert.False(t, hasGroup)
}

func TestNestMenuItems(t *testing.T) {
	flat := []*MenuItem{
		{Id: 1, Label: "Product"},
		{Id: 2, Label: "Features", ParentId: intPtr(1)},
		{Id: 3, Label: "Docs"},
		{Id: 4, Label: "Deep", ParentId: intPtr(2)},
		{Id: 5, Label: "Orphan", ParentId: intPtr(99)},
	}

	roots := NestMenuItems(flat)

	require.Len(t, roots, 4)
	assert.Equal(t, "Product", roots[0].Label)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Features", roots[0].Children[0].Label)
	assert.Equal(t, "Docs", roots[1].Label)
	assert.Equal(t, "Deep", roots[2].Label)
	assert.Equal(t, "Orphan", roots[3].Label)
}

func TestFeatureGroupItemRenderable(t *testing.T) {
	visible := &GlobalFeature{IsVisible: true}
	hidden := &GlobalFeature{IsVisible: false}

	assert.True(t, (&FeatureGroupItem{IsVisible: true, Feature: visible}).Renderable())
	assert.False(t, (&FeatureGroupItem{IsVisible: false, Feature: visible}).Renderable())
	assert.False(t, (&FeatureGroupItem{IsVisible: true, Feature: hidden}).Renderable())
	assert.False(t, (&FeatureGroupItem{IsVisible: true}).Renderable())
}
