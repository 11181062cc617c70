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
)

const duplicateGroupItemMessage = "This feature is already in the group"

type IFeatureGroupItemService interface {
	GetAll(ctx context.Context, featureGroupId int) ([]*entity.FeatureGroupItem, error)
	Create(ctx context.Context, req *dto.CreateFeatureGroupItemRequest) (*entity.FeatureGroupItem, error)
	Update(ctx context.Context, req *dto.UpdateFeatureGroupItemRequest) (*entity.FeatureGroupItem, error)
	Delete(ctx context.Context, id int) error
}

type featureGroupItemService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewFeatureGroupItemService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IFeatureGroupItemService {
	return &featureGroupItemService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

func (s *featureGroupItemService) GetAll(ctx context.Context, featureGroupId int) ([]*entity.FeatureGroupItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.Preload{Relation: "Feature"},
		specification.OrderBy{Field: "feature_group_id"},
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	}
	if featureGroupId > 0 {
		specs = append(specs, specification.ByFeatureGroupID{FeatureGroupID: featureGroupId})
	}
	return uow.FeatureGroupItemRepository().FindAll(ctx, specs...)
}

// Create adds a feature to a group. The group row is locked so concurrent adds to the
// same group get distinct positions.
func (s *featureGroupItemService) Create(ctx context.Context, req *dto.CreateFeatureGroupItemRequest) (*entity.FeatureGroupItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := findOr404(ctx, uow.FeatureGroupRepository(), "Feature group", req.FeatureGroupId, specification.ForUpdate{}); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, uow.GlobalFeatureRepository(), "Feature", req.FeatureId); err != nil {
		return nil, err
	}

	repo := uow.FeatureGroupItemRepository()
	inGroup := specification.ByFeatureGroupID{FeatureGroupID: req.FeatureGroupId}
	existing, err := repo.Count(ctx, inGroup, specification.Filter("feature_id", req.FeatureId))
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Conflict(duplicateGroupItemMessage)
	}

	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return repo.NextSortOrder(ctx, inGroup)
	})
	if err != nil {
		return nil, err
	}

	item := &entity.FeatureGroupItem{
		FeatureGroupId: req.FeatureGroupId,
		FeatureId:      req.FeatureId,
		SortOrder:      sortOrder,
		IsVisible:      boolOr(req.IsVisible, true),
	}
	if err := repo.Create(ctx, item); err != nil {
		return nil, duplicateAs(err, duplicateGroupItemMessage)
	}
	if err := uow.Commit(); err != nil {
		return nil, duplicateAs(err, duplicateGroupItemMessage)
	}

	s.notifier.changed(ctx, "feature_group", item.FeatureGroupId, events.ActionUpdated)
	return s.load(ctx, item.Id)
}

func (s *featureGroupItemService) load(ctx context.Context, id int) (*entity.FeatureGroupItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.FeatureGroupItemRepository(), "Feature group item", id, specification.Preload{Relation: "Feature"})
}

func (s *featureGroupItemService) Update(ctx context.Context, req *dto.UpdateFeatureGroupItemRequest) (*entity.FeatureGroupItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FeatureGroupItemRepository()

	item, err := findOr404(ctx, repo, "Feature group item", req.Id)
	if err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		item.IsVisible = *req.IsVisible
	}
	if err := repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.notifier.changed(ctx, "feature_group", item.FeatureGroupId, events.ActionUpdated)
	return s.load(ctx, item.Id)
}

func (s *featureGroupItemService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := findOr404(ctx, uow.FeatureGroupItemRepository(), "Feature group item", id)
	if err != nil {
		return err
	}
	if err := uow.FeatureGroupItemRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "feature_group", item.FeatureGroupId, events.ActionUpdated)
	return nil
}
