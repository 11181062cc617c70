package service

import (
	"context"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/pkg/events"
	"sitebuilder-be/pkg/slug"
)

const duplicateSlugMessage = "A page with this slug already exists"

type IPageService interface {
	GetAll(ctx context.Context) ([]*entity.Page, error)
	Show(ctx context.Context, id int) (*entity.Page, error)
	Create(ctx context.Context, req *dto.CreatePageRequest) (*entity.Page, error)
	Update(ctx context.Context, req *dto.UpdatePageRequest) (*entity.Page, error)
	Delete(ctx context.Context, id int) error
}

type pageService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewPageService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IPageService {
	return &pageService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

// GetAll lists pages by sortOrder with per-page content counts.
func (s *pageService) GetAll(ctx context.Context) ([]*entity.Page, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pages, err := uow.PageRepository().FindAll(ctx,
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(pages))
	for _, p := range pages {
		ids = append(ids, p.Id)
	}
	counts, err := uow.PageRepository().ContentCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		p.Count = counts[p.Id]
	}
	return pages, nil
}

func (s *pageService) Show(ctx context.Context, id int) (*entity.Page, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, err := findOr404(ctx, uow.PageRepository(), "Page", id)
	if err != nil {
		return nil, err
	}
	counts, err := uow.PageRepository().ContentCounts(ctx, []int{page.Id})
	if err != nil {
		return nil, err
	}
	page.Count = counts[page.Id]
	return page, nil
}

func normalizeSlug(raw string) (string, error) {
	normalized := slug.Make(raw)
	if !slug.IsValid(normalized) {
		return "", apperror.ValidationFailed("slug: must contain at least one letter or digit")
	}
	return normalized, nil
}

func (s *pageService) Create(ctx context.Context, req *dto.CreatePageRequest) (*entity.Page, error) {
	pageSlug, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.PageRepository()
	existing, err := repo.Count(ctx, specification.BySlug{Slug: pageSlug})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Conflict(duplicateSlugMessage)
	}

	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return repo.NextSortOrder(ctx)
	})
	if err != nil {
		return nil, err
	}

	page := &entity.Page{
		Slug:         pageSlug,
		Title:        req.Title,
		MetaTitle:    req.MetaTitle,
		MetaDesc:     req.MetaDesc,
		SortOrder:    sortOrder,
		ShowInHeader: req.ShowInHeader,
		ShowInFooter: req.ShowInFooter,
	}
	if err := repo.Create(ctx, page); err != nil {
		return nil, duplicateAs(err, duplicateSlugMessage)
	}
	if err := uow.Commit(); err != nil {
		return nil, duplicateAs(err, duplicateSlugMessage)
	}

	s.log.Info("PAGE", "Page created", map[string]interface{}{"id": page.Id, "slug": page.Slug})
	s.notifier.changed(ctx, "page", page.Id, events.ActionCreated)
	return page, nil
}

func (s *pageService) Update(ctx context.Context, req *dto.UpdatePageRequest) (*entity.Page, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PageRepository()

	page, err := findOr404(ctx, repo, "Page", req.Id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		pageSlug, err := normalizeSlug(*req.Slug)
		if err != nil {
			return nil, err
		}
		taken, err := repo.Count(ctx, specification.BySlug{Slug: pageSlug}, specification.ExcludeID{ID: page.Id})
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, apperror.Conflict(duplicateSlugMessage)
		}
		page.Slug = pageSlug
	}
	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.MetaTitle != nil {
		page.MetaTitle = req.MetaTitle
	}
	if req.MetaDesc != nil {
		page.MetaDesc = req.MetaDesc
	}
	if req.SortOrder != nil {
		page.SortOrder = *req.SortOrder
	}
	if req.ShowInHeader != nil {
		page.ShowInHeader = *req.ShowInHeader
	}
	if req.ShowInFooter != nil {
		page.ShowInFooter = *req.ShowInFooter
	}

	if err := repo.Update(ctx, page); err != nil {
		return nil, duplicateAs(err, duplicateSlugMessage)
	}

	s.notifier.changed(ctx, "page", page.Id, events.ActionUpdated)
	return page, nil
}

// Delete removes the page; its sections, direct group assignments and nav links cascade.
func (s *pageService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.PageRepository(), "Page", id); err != nil {
		return err
	}
	if err := uow.PageRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("PAGE", "Page deleted", map[string]interface{}{"id": id})
	s.notifier.changed(ctx, "page", id, events.ActionDeleted)
	return nil
}
