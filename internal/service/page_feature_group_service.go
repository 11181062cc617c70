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

const duplicateAssignmentMessage = "This feature group is already assigned to the page"

type IPageFeatureGroupService interface {
	GetAll(ctx context.Context, pageId int) ([]*dto.PageFeatureGroupResponse, error)
	Create(ctx context.Context, req *dto.CreatePageFeatureGroupRequest) (*dto.PageFeatureGroupResponse, error)
	Update(ctx context.Context, req *dto.UpdatePageFeatureGroupRequest) (*dto.PageFeatureGroupResponse, error)
	Delete(ctx context.Context, id int) error
}

type pageFeatureGroupService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewPageFeatureGroupService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IPageFeatureGroupService {
	return &pageFeatureGroupService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

func assignmentTree() []specification.Specification {
	return []specification.Specification{
		specification.Preload{Relation: "FeatureGroup"},
		specification.Preload{Relation: "FeatureGroup.GroupItems", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "FeatureGroup.GroupItems.Feature"},
	}
}

func (s *pageFeatureGroupService) GetAll(ctx context.Context, pageId int) ([]*dto.PageFeatureGroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := append(assignmentTree(),
		specification.OrderBy{Field: "page_id"},
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	)
	if pageId > 0 {
		specs = append(specs, specification.ByPageID{PageID: pageId})
	}

	rows, err := uow.PageFeatureGroupRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PageFeatureGroupResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, renderAssignment(a))
	}
	return out, nil
}

func (s *pageFeatureGroupService) load(ctx context.Context, id int) (*dto.PageFeatureGroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	row, err := findOr404(ctx, uow.PageFeatureGroupRepository(), "Page feature group", id, assignmentTree()...)
	if err != nil {
		return nil, err
	}
	return renderAssignment(row), nil
}

func (s *pageFeatureGroupService) Create(ctx context.Context, req *dto.CreatePageFeatureGroupRequest) (*dto.PageFeatureGroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := findOr404(ctx, uow.PageRepository(), "Page", req.PageId, specification.ForUpdate{}); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, uow.FeatureGroupRepository(), "Feature group", req.FeatureGroupId); err != nil {
		return nil, err
	}

	repo := uow.PageFeatureGroupRepository()
	onPage := specification.ByPageID{PageID: req.PageId}
	existing, err := repo.Count(ctx, onPage, specification.ByFeatureGroupID{FeatureGroupID: req.FeatureGroupId})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Conflict(duplicateAssignmentMessage)
	}

	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return repo.NextSortOrder(ctx, onPage)
	})
	if err != nil {
		return nil, err
	}

	assignment := &entity.PageFeatureGroup{
		PageId:         req.PageId,
		FeatureGroupId: req.FeatureGroupId,
		SortOrder:      sortOrder,
		IsVisible:      boolOr(req.IsVisible, true),
	}
	if err := repo.Create(ctx, assignment); err != nil {
		return nil, duplicateAs(err, duplicateAssignmentMessage)
	}
	if err := uow.Commit(); err != nil {
		return nil, duplicateAs(err, duplicateAssignmentMessage)
	}

	s.notifier.changed(ctx, "page", assignment.PageId, events.ActionUpdated)
	return s.load(ctx, assignment.Id)
}

func (s *pageFeatureGroupService) Update(ctx context.Context, req *dto.UpdatePageFeatureGroupRequest) (*dto.PageFeatureGroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PageFeatureGroupRepository()

	assignment, err := findOr404(ctx, repo, "Page feature group", req.Id)
	if err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		assignment.SortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		assignment.IsVisible = *req.IsVisible
	}
	if err := repo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	s.notifier.changed(ctx, "page", assignment.PageId, events.ActionUpdated)
	return s.load(ctx, assignment.Id)
}

func (s *pageFeatureGroupService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	assignment, err := findOr404(ctx, uow.PageFeatureGroupRepository(), "Page feature group", id)
	if err != nil {
		return err
	}
	if err := uow.PageFeatureGroupRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "page", assignment.PageId, events.ActionUpdated)
	return nil
}
