package service

import (
	"context"
	"net/http"
	"testing"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionIds(sections []*entity.PageSection) []int {
	ids := make([]int, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.Id)
	}
	return ids
}

func TestPageSectionService_ContentRules(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	log := newTestLogger(t)
	pages := NewPageService(uowFactory, nil, log)
	heroes := NewHeroSectionService(uowFactory, nil, log)
	sections := NewPageSectionService(uowFactory, nil, log)

	page, err := pages.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home"})
	require.NoError(t, err)
	hero, err := heroes.Create(ctx, &dto.HeroSectionRequest{Name: ptr("Main"), Headline: ptr("Hello")})
	require.NoError(t, err)

	t.Run("hero section resolves its block", func(t *testing.T) {
		sec, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: page.Id, SectionType: "hero", HeroSectionId: ptr(hero.Id)})
		require.NoError(t, err)
		assert.Equal(t, entity.SectionTypeHero, sec.Block.Type())
		require.NotNil(t, sec.HeroSection)
		assert.Equal(t, "Hello", sec.HeroSection.Headline)
	})

	t.Run("type without its content id is rejected", func(t *testing.T) {
		_, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: page.Id, SectionType: "hero"})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("content id of another type is rejected", func(t *testing.T) {
		_, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: page.Id, SectionType: "media", HeroSectionId: ptr(hero.Id)})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("missing content block is rejected", func(t *testing.T) {
		_, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: page.Id, SectionType: "pricing", PricingSectionId: ptr(42)})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("unknown page is a 404", func(t *testing.T) {
		_, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: 999, SectionType: "text"})
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("switching type needs the matching id", func(t *testing.T) {
		sec, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: page.Id, SectionType: "text", Content: ptr("Body")})
		require.NoError(t, err)

		_, err = sections.Update(ctx, &dto.UpdatePageSectionRequest{Id: sec.Id, SectionType: ptr("hero")})
		assertStatus(t, err, http.StatusBadRequest)

		updated, err := sections.Update(ctx, &dto.UpdatePageSectionRequest{Id: sec.Id, SectionType: ptr("hero"), HeroSectionId: ptr(hero.Id)})
		require.NoError(t, err)
		assert.Equal(t, entity.SectionTypeHero, updated.Block.Type())
	})

	t.Run("a referenced hero cannot be deleted", func(t *testing.T) {
		assertStatus(t, heroes.Delete(ctx, hero.Id), http.StatusBadRequest)
	})

	t.Run("faq section responses carry their questions", func(t *testing.T) {
		category, err := NewFaqCategoryService(uowFactory, nil, log).Create(ctx, &dto.FaqCategoryRequest{Name: ptr("General")})
		require.NoError(t, err)
		faqs := NewFaqService(uowFactory, nil, log)
		_, err = faqs.Create(ctx, &dto.FaqRequest{CategoryId: ptr(category.Id), Question: ptr("Is it free?"), Answer: ptr("Yes.")})
		require.NoError(t, err)
		_, err = faqs.Create(ctx, &dto.FaqRequest{CategoryId: ptr(category.Id), Question: ptr("Can I cancel?"), Answer: ptr("Anytime.")})
		require.NoError(t, err)
		block, err := NewFaqSectionService(uowFactory, nil, log).Create(ctx, &dto.FaqSectionRequest{Heading: ptr("FAQ"), CategoryId: ptr(category.Id)})
		require.NoError(t, err)

		created, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: page.Id, SectionType: "faq", FaqSectionId: ptr(block.Id)})
		require.NoError(t, err)
		require.NotNil(t, created.FaqSection)
		assert.Len(t, created.FaqSection.Faqs, 2)

		updated, err := sections.Update(ctx, &dto.UpdatePageSectionRequest{Id: created.Id, Title: ptr("Questions")})
		require.NoError(t, err)
		require.NotNil(t, updated.FaqSection)
		require.Len(t, updated.FaqSection.Faqs, 2)
		assert.Equal(t, "Is it free?", updated.FaqSection.Faqs[0].Question)
	})
}

func TestPageSectionService_Reorder(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	log := newTestLogger(t)
	pages := NewPageService(uowFactory, nil, log)
	sections := NewPageSectionService(uowFactory, nil, log)

	home, err := pages.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home"})
	require.NoError(t, err)
	other, err := pages.Create(ctx, &dto.CreatePageRequest{Slug: "other", Title: "Other"})
	require.NoError(t, err)

	var ids []int
	for _, title := range []string{"one", "two", "three"} {
		sec, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: home.Id, SectionType: "text", Title: ptr(title)})
		require.NoError(t, err)
		ids = append(ids, sec.Id)
	}
	foreign, err := sections.Create(ctx, &dto.CreatePageSectionRequest{PageId: other.Id, SectionType: "text"})
	require.NoError(t, err)
	assert.Equal(t, 1, foreign.SortOrder)

	t.Run("positions become sortOrder", func(t *testing.T) {
		reordered, err := sections.Reorder(ctx, &dto.ReorderSectionsRequest{
			Action:     "reorder",
			PageId:     home.Id,
			SectionIds: []int{ids[2], ids[0], ids[1]},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{ids[2], ids[0], ids[1]}, sectionIds(reordered))
		for i, sec := range reordered {
			assert.Equal(t, i+1, sec.SortOrder)
		}
	})

	t.Run("a section of another page rolls everything back", func(t *testing.T) {
		_, err := sections.Reorder(ctx, &dto.ReorderSectionsRequest{
			Action:     "reorder",
			PageId:     home.Id,
			SectionIds: []int{ids[0], foreign.Id},
		})
		assertStatus(t, err, http.StatusBadRequest)

		current, err := sections.GetAll(ctx, home.Id, "")
		require.NoError(t, err)
		assert.Equal(t, []int{ids[2], ids[0], ids[1]}, sectionIds(current))
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		_, err := sections.Reorder(ctx, &dto.ReorderSectionsRequest{
			Action:     "reorder",
			PageId:     home.Id,
			SectionIds: []int{ids[0], ids[0]},
		})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("lookup by slug", func(t *testing.T) {
		bySlug, err := sections.GetAll(ctx, 0, "home")
		require.NoError(t, err)
		assert.Len(t, bySlug, 3)

		_, err = sections.GetAll(ctx, 0, "missing")
		assertStatus(t, err, http.StatusNotFound)

		_, err = sections.GetAll(ctx, 0, "")
		assertStatus(t, err, http.StatusBadRequest)
	})
}
