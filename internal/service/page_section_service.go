package service

import (
	"context"
	"errors"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/repository/contract"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/pkg/events"
)

type IPageSectionService interface {
	GetAll(ctx context.Context, pageId int, pageSlug string) ([]*entity.PageSection, error)
	Create(ctx context.Context, req *dto.CreatePageSectionRequest) (*entity.PageSection, error)
	Update(ctx context.Context, req *dto.UpdatePageSectionRequest) (*entity.PageSection, error)
	Reorder(ctx context.Context, req *dto.ReorderSectionsRequest) ([]*entity.PageSection, error)
	Delete(ctx context.Context, id int) error
}

type pageSectionService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewPageSectionService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IPageSectionService {
	return &pageSectionService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

// sectionTree preloads whichever content block a section references, with its own children.
func sectionTree() []specification.Specification {
	return []specification.Specification{
		specification.Preload{Relation: "HeroSection"},
		specification.Preload{Relation: "HeroSection.CtaPrimary"},
		specification.Preload{Relation: "HeroSection.CtaSecondary"},
		specification.Preload{Relation: "FeatureGroup"},
		specification.Preload{Relation: "FeatureGroup.GroupItems", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "FeatureGroup.GroupItems.Feature"},
		specification.Preload{Relation: "MediaSection"},
		specification.Preload{Relation: "MediaSection.Features", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "PricingSection"},
		specification.Preload{Relation: "PricingSection.Plans", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "FaqSection"},
		specification.Preload{Relation: "FaqSection.Category"},
	}
}

// loadSections reads a page's sections in order with content resolved. Feature groups keep
// only renderable items and FAQ sections get their active questions.
func loadSections(ctx context.Context, uow unitofwork.UnitOfWork, pageId int, extra ...specification.Specification) ([]*entity.PageSection, error) {
	specs := append(sectionTree(),
		specification.ByPageID{PageID: pageId},
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	)
	sections, err := uow.PageSectionRepository().FindAll(ctx, append(specs, extra...)...)
	if err != nil {
		return nil, err
	}

	for _, sec := range sections {
		if err := resolveContent(ctx, uow, sec); err != nil {
			return nil, err
		}
	}
	return sections, nil
}

// resolveContent trims feature groups to renderable items and fills FAQ sections.
func resolveContent(ctx context.Context, uow unitofwork.UnitOfWork, sec *entity.PageSection) error {
	visibleGroupItems(sec.FeatureGroup)
	if sec.FaqSection == nil {
		return nil
	}
	faqs, err := faqsFor(ctx, uow, sec.FaqSection.CategoryId)
	if err != nil {
		return err
	}
	sec.FaqSection.Faqs = faqs
	return nil
}

// faqsFor lists active FAQs, limited to one category when categoryId is set.
func faqsFor(ctx context.Context, uow unitofwork.UnitOfWork, categoryId *int) ([]*entity.Faq, error) {
	specs := []specification.Specification{
		specification.Active{},
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	}
	if categoryId != nil {
		specs = append(specs, specification.Filter("category_id", *categoryId))
	}
	return uow.FaqRepository().FindAll(ctx, specs...)
}

func (s *pageSectionService) resolvePage(ctx context.Context, uow unitofwork.UnitOfWork, pageId int, pageSlug string) (int, error) {
	if pageId > 0 {
		return pageId, nil
	}
	if pageSlug == "" {
		return 0, apperror.BadRequest("pageId or pageSlug is required")
	}
	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: pageSlug})
	if err != nil {
		return 0, err
	}
	if page == nil {
		return 0, apperror.NotFound("Page not found")
	}
	return page.Id, nil
}

func (s *pageSectionService) GetAll(ctx context.Context, pageId int, pageSlug string) ([]*entity.PageSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	id, err := s.resolvePage(ctx, uow, pageId, pageSlug)
	if err != nil {
		return nil, err
	}
	return loadSections(ctx, uow, id)
}

func (s *pageSectionService) load(ctx context.Context, id int) (*entity.PageSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	section, err := findOr404(ctx, uow.PageSectionRepository(), "Page section", id, sectionTree()...)
	if err != nil {
		return nil, err
	}
	if err := resolveContent(ctx, uow, section); err != nil {
		return nil, err
	}
	return section, nil
}

func parseBlock(sectionType string, refs entity.SectionRefs) (entity.SectionContent, error) {
	block, err := entity.ParseSectionContent(sectionType, refs)
	if err != nil {
		return entity.SectionContent{}, apperror.ValidationFailed(err.Error())
	}
	return block, nil
}

// checkBlock makes sure the referenced content block exists.
func checkBlock(ctx context.Context, uow unitofwork.UnitOfWork, block entity.SectionContent) error {
	switch block.Type() {
	case entity.SectionTypeHero:
		return mustExist(ctx, uow.HeroSectionRepository(), "Hero section", block.RefId())
	case entity.SectionTypeFeatures:
		return mustExist(ctx, uow.FeatureGroupRepository(), "Feature group", block.RefId())
	case entity.SectionTypeMedia:
		return mustExist(ctx, uow.MediaSectionRepository(), "Media section", block.RefId())
	case entity.SectionTypePricing:
		return mustExist(ctx, uow.PricingSectionRepository(), "Pricing section", block.RefId())
	case entity.SectionTypeFaq:
		return mustExist(ctx, uow.FaqSectionRepository(), "FAQ section", block.RefId())
	}
	return nil
}

func (s *pageSectionService) Create(ctx context.Context, req *dto.CreatePageSectionRequest) (*entity.PageSection, error) {
	block, err := parseBlock(req.SectionType, req.Refs())
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := findOr404(ctx, uow.PageRepository(), "Page", req.PageId, specification.ForUpdate{}); err != nil {
		return nil, err
	}
	if err := checkBlock(ctx, uow, block); err != nil {
		return nil, err
	}

	repo := uow.PageSectionRepository()
	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return repo.NextSortOrder(ctx, specification.ByPageID{PageID: req.PageId})
	})
	if err != nil {
		return nil, err
	}

	section := &entity.PageSection{
		PageId:    req.PageId,
		Block:     block,
		SortOrder: sortOrder,
		IsVisible: boolOr(req.IsVisible, true),
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Content:   req.Content,
	}
	if err := repo.Create(ctx, section); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("PAGE_SECTION", "Section added", map[string]interface{}{
		"id":     section.Id,
		"pageId": section.PageId,
		"type":   string(block.Type()),
	})
	s.notifier.changed(ctx, "page", section.PageId, events.ActionUpdated)
	return s.load(ctx, section.Id)
}

func (s *pageSectionService) Update(ctx context.Context, req *dto.UpdatePageSectionRequest) (*entity.PageSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PageSectionRepository()

	section, err := findOr404(ctx, repo, "Page section", req.Id)
	if err != nil {
		return nil, err
	}

	refs := req.Refs()
	refsSent := refs.HeroSectionId != nil || refs.FeatureGroupId != nil || refs.MediaSectionId != nil ||
		refs.PricingSectionId != nil || refs.FaqSectionId != nil
	if req.SectionType != nil || refsSent {
		sectionType := string(section.Block.Type())
		if req.SectionType != nil {
			sectionType = *req.SectionType
		}
		block, err := parseBlock(sectionType, refs)
		if err != nil {
			return nil, err
		}
		if err := checkBlock(ctx, uow, block); err != nil {
			return nil, err
		}
		section.Block = block
	}
	if section.Block.IsZero() {
		return nil, apperror.ValidationFailed("sectionType: stored content is inconsistent, send sectionType with its content id")
	}

	if req.SortOrder != nil {
		section.SortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		section.IsVisible = *req.IsVisible
	}
	if req.Title != nil {
		section.Title = req.Title
	}
	if req.Subtitle != nil {
		section.Subtitle = req.Subtitle
	}
	if req.Content != nil {
		section.Content = req.Content
	}

	if err := repo.Update(ctx, section); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "page", section.PageId, events.ActionUpdated)
	return s.load(ctx, section.Id)
}

// Reorder writes sortOrder = position+1 for every id, all or nothing.
func (s *pageSectionService) Reorder(ctx context.Context, req *dto.ReorderSectionsRequest) ([]*entity.PageSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.PageRepository(), "Page", req.PageId); err != nil {
		return nil, err
	}

	if err := uow.PageSectionRepository().Reorder(ctx, req.PageId, req.SectionIds); err != nil {
		if errors.Is(err, contract.ErrSectionsOutsidePage) {
			return nil, apperror.BadRequest("sectionIds must be distinct sections of page %d", req.PageId)
		}
		return nil, err
	}

	s.log.Info("PAGE_SECTION", "Sections reordered", map[string]interface{}{
		"pageId":     req.PageId,
		"sectionIds": req.SectionIds,
	})
	s.notifier.changed(ctx, "page", req.PageId, events.ActionReordered)
	return loadSections(ctx, uow, req.PageId)
}

func (s *pageSectionService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	section, err := findOr404(ctx, uow.PageSectionRepository(), "Page section", id)
	if err != nil {
		return err
	}
	if err := uow.PageSectionRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "page", section.PageId, events.ActionUpdated)
	return nil
}
