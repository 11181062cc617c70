package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type siteFixture struct {
	pages    IPageService
	sections IPageSectionService
	heroes   IHeroSectionService
	pricing  IPricingSectionService
	faqCats  IFaqCategoryService
	faqs     IFaqService
	faqBlock IFaqSectionService
	public   IPublicSiteService
}

func newSiteFixture(t *testing.T, uowFactory unitofwork.RepositoryFactory) siteFixture {
	log := newTestLogger(t)
	return siteFixture{
		pages:    NewPageService(uowFactory, nil, log),
		sections: NewPageSectionService(uowFactory, nil, log),
		heroes:   NewHeroSectionService(uowFactory, nil, log),
		pricing:  NewPricingSectionService(uowFactory, nil, log),
		faqCats:  NewFaqCategoryService(uowFactory, nil, log),
		faqs:     NewFaqService(uowFactory, nil, log),
		faqBlock: NewFaqSectionService(uowFactory, nil, log),
		public:   NewPublicSiteService(uowFactory),
	}
}

func sectionTypes(sections []*entity.PageSection) []entity.SectionType {
	out := make([]entity.SectionType, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Block.Type())
	}
	return out
}

func TestPublicSiteService_PageBySlug(t *testing.T) {
	ctx := context.Background()
	f := newSiteFixture(t, newTestFactory(t))

	home, err := f.pages.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home", MetaDesc: ptr("Welcome")})
	require.NoError(t, err)

	liveHero, err := f.heroes.Create(ctx, &dto.HeroSectionRequest{Name: ptr("Live"), Headline: ptr("Live hero")})
	require.NoError(t, err)
	offHero, err := f.heroes.Create(ctx, &dto.HeroSectionRequest{Name: ptr("Off"), Headline: ptr("Off hero"), IsActive: ptr(false)})
	require.NoError(t, err)
	plans, err := f.pricing.Create(ctx, &dto.CreatePricingSectionRequest{
		Heading: "Plans",
		Plans: []*dto.PricingPlanInput{
			{Name: "Free", Price: "0"},
			{Name: "Legacy", Price: "5", IsActive: ptr(false)},
		},
	})
	require.NoError(t, err)
	category, err := f.faqCats.Create(ctx, &dto.FaqCategoryRequest{Name: ptr("General")})
	require.NoError(t, err)
	_, err = f.faqs.Create(ctx, &dto.FaqRequest{CategoryId: ptr(category.Id), Question: ptr("Is it free?"), Answer: ptr("Yes.")})
	require.NoError(t, err)
	faqBlock, err := f.faqBlock.Create(ctx, &dto.FaqSectionRequest{Heading: ptr("FAQ"), CategoryId: ptr(category.Id)})
	require.NoError(t, err)

	for _, req := range []*dto.CreatePageSectionRequest{
		{PageId: home.Id, SectionType: "hero", HeroSectionId: ptr(liveHero.Id)},
		{PageId: home.Id, SectionType: "hero", HeroSectionId: ptr(offHero.Id)},
		{PageId: home.Id, SectionType: "text", Content: ptr("hidden"), IsVisible: ptr(false)},
		{PageId: home.Id, SectionType: "pricing", PricingSectionId: ptr(plans.Id)},
		{PageId: home.Id, SectionType: "faq", FaqSectionId: ptr(faqBlock.Id)},
	} {
		_, err := f.sections.Create(ctx, req)
		require.NoError(t, err)
	}

	t.Run("admin listing keeps every section", func(t *testing.T) {
		all, err := f.sections.GetAll(ctx, home.Id, "")
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("public page keeps visible sections with active content", func(t *testing.T) {
		page, err := f.public.PageBySlug(ctx, "home")
		require.NoError(t, err)
		assert.Equal(t,
			[]entity.SectionType{entity.SectionTypeHero, entity.SectionTypePricing, entity.SectionTypeFaq},
			sectionTypes(page.Sections))

		pricing := page.Sections[1].PricingSection
		require.Len(t, pricing.Plans, 1)
		assert.Equal(t, "Free", pricing.Plans[0].Name)

		faq := page.Sections[2].FaqSection
		require.Len(t, faq.Faqs, 1)

		require.NotNil(t, page.Seo)
		assert.Equal(t, "Welcome", page.Seo.Description)
		var jsonLD []string
		for _, raw := range page.Seo.JSONLD {
			jsonLD = append(jsonLD, string(raw))
		}
		assert.Contains(t, strings.Join(jsonLD, "\n"), "FAQPage")
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		_, err := f.public.PageBySlug(ctx, "nope")
		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestPublicSiteService_Site(t *testing.T) {
	ctx := context.Background()
	f := newSiteFixture(t, newTestFactory(t))

	_, err := f.pages.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home", ShowInHeader: true, ShowInFooter: true})
	require.NoError(t, err)
	_, err = f.pages.Create(ctx, &dto.CreatePageRequest{Slug: "legal", Title: "Legal", ShowInFooter: true})
	require.NoError(t, err)

	site, err := f.public.Site(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Site", site.SiteName)

	require.Len(t, site.Header.NavItems, 1)
	assert.Equal(t, "Home", site.Header.NavItems[0].Label)
	assert.Equal(t, "/", site.Header.NavItems[0].Href)

	require.Len(t, site.Footer.Pages, 2)
	assert.Equal(t, "/legal", site.Footer.Pages[1].Href)
}

func TestPublicSiteService_FaqDetail(t *testing.T) {
	ctx := context.Background()
	f := newSiteFixture(t, newTestFactory(t))

	billing, err := f.faqCats.Create(ctx, &dto.FaqCategoryRequest{Name: ptr("Billing & Plans")})
	require.NoError(t, err)
	hidden, err := f.faqCats.Create(ctx, &dto.FaqCategoryRequest{Name: ptr("Internal"), IsActive: ptr(false)})
	require.NoError(t, err)

	for _, q := range []string{"Can I pay yearly?", "Do you offer refunds?", "Is VAT included?"} {
		_, err := f.faqs.Create(ctx, &dto.FaqRequest{CategoryId: ptr(billing.Id), Question: ptr(q), Answer: ptr("Answer to " + q)})
		require.NoError(t, err)
	}
	_, err = f.faqs.Create(ctx, &dto.FaqRequest{CategoryId: ptr(billing.Id), Question: ptr("Old question?"), Answer: ptr("Gone"), IsActive: ptr(false)})
	require.NoError(t, err)
	_, err = f.faqs.Create(ctx, &dto.FaqRequest{CategoryId: ptr(hidden.Id), Question: ptr("Secret?"), Answer: ptr("No")})
	require.NoError(t, err)

	t.Run("matches slugs derived from the stored text", func(t *testing.T) {
		detail, err := f.public.FaqDetail(ctx, "billing-and-plans", "do-you-offer-refunds")
		require.NoError(t, err)
		assert.Equal(t, "Do you offer refunds?", detail.Question)
		assert.Equal(t, "Billing & Plans", detail.Category)

		require.Len(t, detail.Related, 2)
		assert.Equal(t, "/faq/billing-and-plans/can-i-pay-yearly", detail.Related[0].Path)
		assert.True(t, strings.HasSuffix(detail.Seo.Canonical, "/faq/billing-and-plans/do-you-offer-refunds"))
	})

	for name, path := range map[string][2]string{
		"inactive faq":      {"billing-and-plans", "old-question"},
		"inactive category": {"internal", "secret"},
		"wrong category":    {"general", "do-you-offer-refunds"},
		"unknown question":  {"billing-and-plans", "nothing-here"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.public.FaqDetail(ctx, path[0], path[1])
			assertStatus(t, err, http.StatusNotFound)
		})
	}
}

func TestPublicSiteService_ThemeCSS(t *testing.T) {
	css, err := NewPublicSiteService(newTestFactory(t)).ThemeCSS(context.Background())
	require.NoError(t, err)
	assert.Contains(t, css, ":root")
}
