package main

import (
	"context"
	"fmt"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/model"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var forceSeed bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo site (pages, features, hero, pricing, FAQ, header)",
	Long: `Seeds a small demo site through the same services the admin API uses.
The command does nothing when pages already exist unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		var pages int64
		if err := db.Model(&model.Page{}).Count(&pages).Error; err != nil {
			return err
		}
		if pages > 0 && !forceSeed {
			color.Yellow("Database already has %d page(s), skipping (use --force to seed anyway)", pages)
			return nil
		}

		s := newSeeder(unitofwork.NewRepositoryFactory(db), logger.NewFileLogger(cfg.App.LogFilePath))
		if err := s.run(cmd.Context()); err != nil {
			return err
		}
		color.Green("Seed completed")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&forceSeed, "force", false, "seed even if pages exist")
}

type seeder struct {
	pages    service.IPageService
	sections service.IPageSectionService
	features service.IGlobalFeatureService
	groups   service.IFeatureGroupService
	items    service.IFeatureGroupItemService
	ctas     service.ICTAService
	heroes   service.IHeroSectionService
	pricing  service.IPricingSectionService
	faqCats  service.IFaqCategoryService
	faqs     service.IFaqService
	faqBlock service.IFaqSectionService
	header   service.IHeaderConfigService
}

func newSeeder(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *seeder {
	return &seeder{
		pages:    service.NewPageService(uowFactory, nil, log),
		sections: service.NewPageSectionService(uowFactory, nil, log),
		features: service.NewGlobalFeatureService(uowFactory, nil, log),
		groups:   service.NewFeatureGroupService(uowFactory, nil, log),
		items:    service.NewFeatureGroupItemService(uowFactory, nil, log),
		ctas:     service.NewCTAService(uowFactory, nil, log),
		heroes:   service.NewHeroSectionService(uowFactory, nil, log),
		pricing:  service.NewPricingSectionService(uowFactory, nil, log),
		faqCats:  service.NewFaqCategoryService(uowFactory, nil, log),
		faqs:     service.NewFaqService(uowFactory, nil, log),
		faqBlock: service.NewFaqSectionService(uowFactory, nil, log),
		header:   service.NewHeaderConfigService(uowFactory, nil, log),
	}
}

func ptr[T any](v T) *T { return &v }

func (s *seeder) run(ctx context.Context) error {
	home, err := s.pages.Create(ctx, &dto.CreatePageRequest{Slug: "home", Title: "Home", ShowInHeader: true, ShowInFooter: true})
	if err != nil {
		return fmt.Errorf("seed pages: %w", err)
	}
	pricingPage, err := s.pages.Create(ctx, &dto.CreatePageRequest{Slug: "pricing", Title: "Pricing", ShowInHeader: true, ShowInFooter: true})
	if err != nil {
		return fmt.Errorf("seed pages: %w", err)
	}
	color.Cyan("  pages: %s, %s", home.Slug, pricingPage.Slug)

	signup, err := s.ctas.Create(ctx, &dto.CreateCTARequest{Text: "Start free", Url: "/signup", Style: "primary", Icon: ptr("rocket")})
	if err != nil {
		return fmt.Errorf("seed ctas: %w", err)
	}
	demo, err := s.ctas.Create(ctx, &dto.CreateCTARequest{Text: "Book a demo", Url: "/demo", Style: "outline"})
	if err != nil {
		return fmt.Errorf("seed ctas: %w", err)
	}

	hero, err := s.heroes.Create(ctx, &dto.HeroSectionRequest{
		Name:           ptr("Home hero"),
		Tagline:        ptr("Automation for teams"),
		Headline:       ptr("Ship your workflows faster"),
		Subheading:     ptr("Connect your tools and let the busywork run itself."),
		CtaPrimaryId:   ptr(signup.Id),
		CtaSecondaryId: ptr(demo.Id),
	})
	if err != nil {
		return fmt.Errorf("seed hero: %w", err)
	}

	group, err := s.groups.Create(ctx, &dto.CreateFeatureGroupRequest{Name: "Home features", Heading: "Everything you need", LayoutType: "grid"})
	if err != nil {
		return fmt.Errorf("seed feature group: %w", err)
	}
	for _, f := range []dto.CreateGlobalFeatureRequest{
		{Title: "Integrations", Description: "Hundreds of connectors out of the box.", IconName: "plug", Category: "integration"},
		{Title: "AI assistant", Description: "Draft and summarize with one click.", IconName: "sparkles", Category: "ai"},
		{Title: "Workflows", Description: "Chain steps visually.", IconName: "workflow", Category: "automation"},
		{Title: "Security", Description: "SSO and audit logs on every plan.", IconName: "shield-check", Category: "security"},
	} {
		req := f
		feature, err := s.features.Create(ctx, &req)
		if err != nil {
			return fmt.Errorf("seed feature %q: %w", f.Title, err)
		}
		if _, err := s.items.Create(ctx, &dto.CreateFeatureGroupItemRequest{FeatureGroupId: group.Id, FeatureId: feature.Id}); err != nil {
			return fmt.Errorf("seed feature group item: %w", err)
		}
	}

	plans, err := s.pricing.Create(ctx, &dto.CreatePricingSectionRequest{
		Heading: "Simple pricing",
		Plans: []*dto.PricingPlanInput{
			{Name: "Starter", Price: "0", Features: []string{"3 workflows", "Community support"}},
			{Name: "Team", Price: "29", Features: []string{"Unlimited workflows", "Email support"}, IsPopular: true},
		},
	})
	if err != nil {
		return fmt.Errorf("seed pricing: %w", err)
	}

	general, err := s.faqCats.Create(ctx, &dto.FaqCategoryRequest{Name: ptr("General")})
	if err != nil {
		return fmt.Errorf("seed faq category: %w", err)
	}
	for _, qa := range [][2]string{
		{"Is there a free plan?", "Yes, the Starter plan is free forever."},
		{"Can I cancel anytime?", "Yes, plans are billed monthly and can be cancelled at any time."},
	} {
		if _, err := s.faqs.Create(ctx, &dto.FaqRequest{CategoryId: ptr(general.Id), Question: ptr(qa[0]), Answer: ptr(qa[1])}); err != nil {
			return fmt.Errorf("seed faq: %w", err)
		}
	}
	faqBlock, err := s.faqBlock.Create(ctx, &dto.FaqSectionRequest{Heading: ptr("Questions"), CategoryId: ptr(general.Id)})
	if err != nil {
		return fmt.Errorf("seed faq section: %w", err)
	}

	for _, sec := range []dto.CreatePageSectionRequest{
		{PageId: home.Id, SectionType: "hero", HeroSectionId: ptr(hero.Id)},
		{PageId: home.Id, SectionType: "features", FeatureGroupId: ptr(group.Id)},
		{PageId: home.Id, SectionType: "faq", FaqSectionId: ptr(faqBlock.Id)},
		{PageId: pricingPage.Id, SectionType: "pricing", PricingSectionId: ptr(plans.Id)},
	} {
		req := sec
		if _, err := s.sections.Create(ctx, &req); err != nil {
			return fmt.Errorf("seed page section: %w", err)
		}
	}

	if _, err := s.header.Replace(ctx, 0, &dto.HeaderConfigRequest{
		IsSticky: true,
		NavItems: []*dto.HeaderNavItemInput{
			{PageId: ptr(home.Id)},
			{PageId: ptr(pricingPage.Id)},
		},
		HeaderCTAs: []*dto.HeaderCTAInput{{CtaId: signup.Id}},
	}); err != nil {
		return fmt.Errorf("seed header: %w", err)
	}

	return nil
}
