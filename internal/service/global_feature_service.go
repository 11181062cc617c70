package service

import (
	"context"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/pkg/events"
)

type IGlobalFeatureService interface {
	GetAll(ctx context.Context, category string) ([]*entity.GlobalFeature, error)
	Show(ctx context.Context, id int) (*entity.GlobalFeature, error)
	Create(ctx context.Context, req *dto.CreateGlobalFeatureRequest) (*entity.GlobalFeature, error)
	Update(ctx context.Context, req *dto.UpdateGlobalFeatureRequest) (*entity.GlobalFeature, error)
	Delete(ctx context.Context, id int) error
}

type globalFeatureService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewGlobalFeatureService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IGlobalFeatureService {
	return &globalFeatureService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

func (s *globalFeatureService) GetAll(ctx context.Context, category string) ([]*entity.GlobalFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	}
	if category != "" {
		specs = append(specs, specification.Filter("category", category))
	}
	return uow.GlobalFeatureRepository().FindAll(ctx, specs...)
}

func (s *globalFeatureService) Show(ctx context.Context, id int) (*entity.GlobalFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.GlobalFeatureRepository(), "Feature", id)
}

func (s *globalFeatureService) Create(ctx context.Context, req *dto.CreateGlobalFeatureRequest) (*entity.GlobalFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.GlobalFeatureRepository()
	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return repo.NextSortOrder(ctx)
	})
	if err != nil {
		return nil, err
	}

	feature := &entity.GlobalFeature{
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		Category:    entity.FeatureCategory(req.Category),
		SortOrder:   sortOrder,
		IsVisible:   boolOr(req.IsVisible, true),
	}
	if err := repo.Create(ctx, feature); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifier.changed(ctx, "feature", feature.Id, events.ActionCreated)
	return feature, nil
}

func (s *globalFeatureService) Update(ctx context.Context, req *dto.UpdateGlobalFeatureRequest) (*entity.GlobalFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.GlobalFeatureRepository()

	feature, err := findOr404(ctx, repo, "Feature", req.Id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		feature.Title = *req.Title
	}
	if req.Description != nil {
		feature.Description = *req.Description
	}
	if req.IconName != nil {
		feature.IconName = *req.IconName
	}
	if req.Category != nil {
		feature.Category = entity.FeatureCategory(*req.Category)
	}
	if req.SortOrder != nil {
		feature.SortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		feature.IsVisible = *req.IsVisible
	}

	if err := repo.Update(ctx, feature); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "feature", feature.Id, events.ActionUpdated)
	return feature, nil
}

// Delete removes the feature from every group it belongs to.
func (s *globalFeatureService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.GlobalFeatureRepository(), "Feature", id); err != nil {
		return err
	}
	if err := uow.GlobalFeatureRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("FEATURE", "Feature deleted", map[string]interface{}{"id": id})
	s.notifier.changed(ctx, "feature", id, events.ActionDeleted)
	return nil
}
