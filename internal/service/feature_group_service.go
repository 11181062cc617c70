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

type IFeatureGroupService interface {
	GetAll(ctx context.Context) ([]*entity.FeatureGroup, error)
	Show(ctx context.Context, id int) (*entity.FeatureGroup, error)
	Create(ctx context.Context, req *dto.CreateFeatureGroupRequest) (*entity.FeatureGroup, error)
	Update(ctx context.Context, req *dto.UpdateFeatureGroupRequest) (*entity.FeatureGroup, error)
	Delete(ctx context.Context, id int) error
}

type featureGroupService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewFeatureGroupService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IFeatureGroupService {
	return &featureGroupService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

// featureGroupTree preloads items with their features and page assignments with their pages.
func featureGroupTree() []specification.Specification {
	return []specification.Specification{
		specification.Preload{Relation: "GroupItems", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "GroupItems.Feature"},
		specification.Preload{Relation: "PageAssignments", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "PageAssignments.Page"},
	}
}

func withCount(g *entity.FeatureGroup) *entity.FeatureGroup {
	g.Count = &entity.FeatureGroupCount{
		GroupItems:      len(g.GroupItems),
		PageAssignments: len(g.PageAssignments),
	}
	return g
}

func (s *featureGroupService) GetAll(ctx context.Context) ([]*entity.FeatureGroup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := append(featureGroupTree(), specification.OrderBy{Field: "id"})
	groups, err := uow.FeatureGroupRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		withCount(g)
	}
	return groups, nil
}

func (s *featureGroupService) Show(ctx context.Context, id int) (*entity.FeatureGroup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := findOr404(ctx, uow.FeatureGroupRepository(), "Feature group", id, featureGroupTree()...)
	if err != nil {
		return nil, err
	}
	return withCount(group), nil
}

func (s *featureGroupService) Create(ctx context.Context, req *dto.CreateFeatureGroupRequest) (*entity.FeatureGroup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group := &entity.FeatureGroup{
		Name:       req.Name,
		Heading:    req.Heading,
		Subheading: req.Subheading,
		LayoutType: orDefault(req.LayoutType, "grid"),
		IsActive:   boolOr(req.IsActive, true),
	}
	if err := uow.FeatureGroupRepository().Create(ctx, group); err != nil {
		return nil, err
	}

	s.log.Info("FEATURE_GROUP", "Feature group created", map[string]interface{}{"id": group.Id, "name": group.Name})
	s.notifier.changed(ctx, "feature_group", group.Id, events.ActionCreated)
	return s.Show(ctx, group.Id)
}

// Update writes only the fields present in the request; items and assignments are untouched.
func (s *featureGroupService) Update(ctx context.Context, req *dto.UpdateFeatureGroupRequest) (*entity.FeatureGroup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FeatureGroupRepository()

	group, err := findOr404(ctx, repo, "Feature group", req.Id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Heading != nil {
		group.Heading = *req.Heading
	}
	if req.Subheading != nil {
		group.Subheading = *req.Subheading
	}
	if req.LayoutType != nil {
		group.LayoutType = *req.LayoutType
	}
	if req.IsActive != nil {
		group.IsActive = *req.IsActive
	}

	if err := repo.Update(ctx, group); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "feature_group", group.Id, events.ActionUpdated)
	return s.Show(ctx, group.Id)
}

func (s *featureGroupService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.FeatureGroupRepository(), "Feature group", id); err != nil {
		return err
	}
	if err := inUseBy(ctx, uow.PageSectionRepository(), "feature_group_id", "This feature group", id); err != nil {
		return err
	}
	if err := uow.FeatureGroupRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "feature_group", id, events.ActionDeleted)
	return nil
}
