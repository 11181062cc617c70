package service

import (
	"context"
	"sort"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/pkg/designtokens"
	"sitebuilder-be/pkg/seo"
	"sitebuilder-be/pkg/slug"
)

const relatedFaqLimit = 5

// IPublicSiteService serves the read-only data the public website renders from.
type IPublicSiteService interface {
	Site(ctx context.Context) (*dto.PublicSiteResponse, error)
	PageBySlug(ctx context.Context, pageSlug string) (*dto.PublicPageResponse, error)
	FaqDetail(ctx context.Context, categorySlug, questionSlug string) (*dto.FaqDetailResponse, error)
	ThemeCSS(ctx context.Context) (string, error)
}

type publicSiteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPublicSiteService(uowFactory unitofwork.RepositoryFactory) IPublicSiteService {
	return &publicSiteService{uowFactory: uowFactory}
}

func seoSite(s *entity.SiteSettings) seo.Site {
	site := seo.Site{Name: s.SiteName, BaseURL: s.SiteUrl, LogoURL: deref(s.LogoUrl)}
	keys := make([]string, 0, len(s.SocialLinks))
	for k := range s.SocialLinks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if url := s.SocialLinks[k]; url != "" {
			site.SameAs = append(site.SameAs, url)
		}
	}
	return site
}

func pageHref(p *entity.Page) string {
	if p.Slug == "home" {
		return "/"
	}
	return "/" + p.Slug
}

func (s *publicSiteService) Site(ctx context.Context) (*dto.PublicSiteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := readSiteSettings(ctx, uow)
	if err != nil {
		return nil, err
	}
	header, err := activeHeader(ctx, uow)
	if err != nil {
		return nil, err
	}
	pages, err := uow.PageRepository().FindAll(ctx,
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	footer := &dto.PublicFooter{
		FooterText:  settings.FooterText,
		Copyright:   settings.Copyright,
		SocialLinks: settings.SocialLinks,
		Pages:       make([]*dto.PageLink, 0),
	}
	var headerPages []*dto.NavLink
	for _, p := range pages {
		if p.ShowInFooter {
			footer.Pages = append(footer.Pages, &dto.PageLink{Id: p.Id, Title: p.Title, Slug: p.Slug, Href: pageHref(p)})
		}
		if p.ShowInHeader {
			id := p.Id
			headerPages = append(headerPages, &dto.NavLink{Label: p.Title, Href: pageHref(p), PageId: &id})
		}
	}

	return &dto.PublicSiteResponse{
		SiteName: settings.SiteName,
		SiteUrl:  settings.SiteUrl,
		LogoUrl:  settings.LogoUrl,
		Header:   publicHeader(header, headerPages),
		Footer:   footer,
	}, nil
}

// publicHeader resolves the active configuration into what the nav bar shows. Without a saved
// configuration the pages flagged showInHeader make up the navigation.
func publicHeader(cfg *entity.HeaderConfig, fallbackNav []*dto.NavLink) *dto.PublicHeader {
	out := &dto.PublicHeader{
		NavItems: make([]*dto.NavLink, 0),
		CTAs:     make([]*entity.CTA, 0),
		Menus:    make([]*entity.Menu, 0),
	}
	if cfg == nil {
		out.NavItems = append(out.NavItems, fallbackNav...)
		return out
	}

	out.BackgroundColor = cfg.BackgroundColor
	out.TextColor = cfg.TextColor
	out.HoverColor = cfg.HoverColor
	out.ActiveColor = cfg.ActiveColor
	out.LogoUrl = cfg.LogoUrl
	out.IsSticky = cfg.IsSticky

	for _, item := range cfg.NavItems {
		if !item.IsVisible {
			continue
		}
		out.NavItems = append(out.NavItems, &dto.NavLink{Label: item.Label(), Href: item.Href(), PageId: item.PageId})
	}
	for _, hc := range cfg.HeaderCTAs {
		if hc.IsVisible && hc.Cta != nil && hc.Cta.IsActive {
			out.CTAs = append(out.CTAs, hc.Cta)
		}
	}
	for _, link := range cfg.Menus {
		if link.Menu == nil || !link.Menu.IsActive {
			continue
		}
		visible := make([]*entity.MenuItem, 0, len(link.Menu.Items))
		for _, it := range link.Menu.Items {
			if it.IsVisible {
				visible = append(visible, it)
			}
		}
		link.Menu.Items = entity.NestMenuItems(visible)
		out.Menus = append(out.Menus, link.Menu)
	}
	return out
}

// publishable drops sections whose content block was switched off.
func publishable(sec *entity.PageSection) bool {
	switch sec.Block.Type() {
	case entity.SectionTypeHero:
		return sec.HeroSection != nil && sec.HeroSection.IsActive
	case entity.SectionTypeFeatures:
		return sec.FeatureGroup != nil && sec.FeatureGroup.IsActive
	case entity.SectionTypeMedia:
		return sec.MediaSection != nil && sec.MediaSection.IsActive
	case entity.SectionTypePricing:
		return sec.PricingSection != nil && sec.PricingSection.IsActive
	case entity.SectionTypeFaq:
		return sec.FaqSection != nil && sec.FaqSection.IsActive
	}
	return true
}

func (s *publicSiteService) PageBySlug(ctx context.Context, pageSlug string) (*dto.PublicPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: pageSlug})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, apperror.NotFound("Page not found")
	}

	all, err := loadSections(ctx, uow, page.Id, specification.Visible{})
	if err != nil {
		return nil, err
	}
	sections := make([]*entity.PageSection, 0, len(all))
	var faqs []seo.QA
	var image string
	for _, sec := range all {
		if !publishable(sec) {
			continue
		}
		if sec.PricingSection != nil {
			sec.PricingSection.Plans = activePlans(sec.PricingSection.Plans)
		}
		if sec.FaqSection != nil {
			for _, f := range sec.FaqSection.Faqs {
				faqs = append(faqs, seo.QA{Question: f.Question, Answer: f.Answer})
			}
		}
		if image == "" && sec.HeroSection != nil && sec.HeroSection.MediaType == "image" {
			image = deref(sec.HeroSection.MediaUrl)
		}
		sections = append(sections, sec)
	}

	settings, err := readSiteSettings(ctx, uow)
	if err != nil {
		return nil, err
	}
	meta := seo.ForPage(seoSite(settings), seo.Page{
		Slug:        page.Slug,
		Title:       page.Title,
		MetaTitle:   deref(page.MetaTitle),
		Description: deref(page.MetaDesc),
		Image:       image,
	}, faqs)

	return &dto.PublicPageResponse{Page: page, Sections: sections, Seo: &meta}, nil
}

func activePlans(plans []*entity.PricingPlan) []*entity.PricingPlan {
	out := make([]*entity.PricingPlan, 0, len(plans))
	for _, p := range plans {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func faqPath(category, question string) string {
	return "faq/" + slug.Make(category) + "/" + slug.Make(question)
}

// FaqDetail matches both slugs against slugs recomputed from the stored text.
func (s *publicSiteService) FaqDetail(ctx context.Context, categorySlug, questionSlug string) (*dto.FaqDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	faqs, err := uow.FaqRepository().FindAll(ctx,
		specification.Active{},
		specification.Preload{Relation: "Category"},
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	var match *entity.Faq
	for _, f := range faqs {
		if f.Category == nil || !f.Category.IsActive {
			continue
		}
		if slug.Make(f.Category.Name) == categorySlug && slug.Make(f.Question) == questionSlug {
			match = f
			break
		}
	}
	if match == nil {
		return nil, apperror.NotFound("FAQ not found")
	}

	related := make([]*dto.FaqLink, 0, relatedFaqLimit)
	for _, f := range faqs {
		if len(related) == relatedFaqLimit {
			break
		}
		if f.Id == match.Id || f.CategoryId != match.CategoryId {
			continue
		}
		related = append(related, &dto.FaqLink{Question: f.Question, Path: "/" + faqPath(f.Category.Name, f.Question)})
	}

	settings, err := readSiteSettings(ctx, uow)
	if err != nil {
		return nil, err
	}
	meta := seo.QAPage(seoSite(settings), faqPath(match.Category.Name, match.Question), seo.QA{
		Question: match.Question,
		Answer:   match.Answer,
	})

	return &dto.FaqDetailResponse{
		Category: match.Category.Name,
		Question: match.Question,
		Answer:   match.Answer,
		Related:  related,
		Seo:      &meta,
	}, nil
}

func (s *publicSiteService) ThemeCSS(ctx context.Context) (string, error) {
	settings, err := readSiteSettings(ctx, s.uowFactory.NewUnitOfWork(ctx))
	if err != nil {
		return "", err
	}
	return designtokens.RenderCSS(designtokens.Merge(settings.DesignTokens)), nil
}
