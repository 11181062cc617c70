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

const duplicateMenuMessage = "A menu with this name already exists"

type IMenuService interface {
	GetAll(ctx context.Context) ([]*entity.Menu, error)
	Show(ctx context.Context, id int) (*entity.Menu, error)
	Create(ctx context.Context, req *dto.MenuRequest) (*entity.Menu, error)
	Update(ctx context.Context, req *dto.MenuRequest) (*entity.Menu, error)
	Delete(ctx context.Context, id int) error
}

type menuService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewMenuService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IMenuService {
	return &menuService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

var menuItems = specification.Preload{Relation: "Items", Order: "sort_order ASC, id ASC"}

func (s *menuService) GetAll(ctx context.Context) ([]*entity.Menu, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MenuRepository().FindAll(ctx, menuItems, specification.OrderBy{Field: "name"})
}

func (s *menuService) Show(ctx context.Context, id int) (*entity.Menu, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.MenuRepository(), "Menu", id, menuItems)
}

func (s *menuService) checkName(ctx context.Context, uow unitofwork.UnitOfWork, name string, exceptId int) error {
	specs := []specification.Specification{specification.Filter("name", name)}
	if exceptId > 0 {
		specs = append(specs, specification.ExcludeID{ID: exceptId})
	}
	taken, err := uow.MenuRepository().Count(ctx, specs...)
	if err != nil {
		return err
	}
	if taken > 0 {
		return apperror.Conflict(duplicateMenuMessage)
	}
	return nil
}

func (s *menuService) Create(ctx context.Context, req *dto.MenuRequest) (*entity.Menu, error) {
	if req.Name == nil || *req.Name == "" {
		return nil, apperror.ValidationFailed("name: is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.checkName(ctx, uow, *req.Name, 0); err != nil {
		return nil, err
	}
	menu := &entity.Menu{Name: *req.Name, IsActive: boolOr(req.IsActive, true)}
	if err := uow.MenuRepository().Create(ctx, menu); err != nil {
		return nil, duplicateAs(err, duplicateMenuMessage)
	}
	if req.Items != nil {
		if err := writeMenuItems(ctx, uow, menu.Id, nil, *req.Items); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifier.changed(ctx, "menu", menu.Id, events.ActionCreated)
	return s.Show(ctx, menu.Id)
}

func (s *menuService) Update(ctx context.Context, req *dto.MenuRequest) (*entity.Menu, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	menu, err := findOr404(ctx, uow.MenuRepository(), "Menu", req.Id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := s.checkName(ctx, uow, *req.Name, menu.Id); err != nil {
			return nil, err
		}
		menu.Name = *req.Name
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if err := uow.MenuRepository().Update(ctx, menu); err != nil {
		return nil, duplicateAs(err, duplicateMenuMessage)
	}

	if req.Items != nil {
		if err := uow.MenuItemRepository().DeleteAll(ctx, specification.Filter("menu_id", menu.Id)); err != nil {
			return nil, err
		}
		if err := writeMenuItems(ctx, uow, menu.Id, nil, *req.Items); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifier.changed(ctx, "menu", menu.Id, events.ActionUpdated)
	return s.Show(ctx, menu.Id)
}

// writeMenuItems inserts items level by level so children get their parent's new id.
// Children of children are rejected: menus nest one level deep.
func writeMenuItems(ctx context.Context, uow unitofwork.UnitOfWork, menuId int, parentId *int, items []*dto.MenuItemInput) error {
	for i, in := range items {
		if parentId != nil && len(in.Children) > 0 {
			return apperror.ValidationFailed("items: menus support one level of nested items")
		}
		item := &entity.MenuItem{
			MenuId:    menuId,
			ParentId:  parentId,
			Label:     in.Label,
			Url:       in.Url,
			Target:    orDefault(in.Target, "_self"),
			Icon:      in.Icon,
			SortOrder: positionOr(in.SortOrder, i),
			IsVisible: boolOr(in.IsVisible, true),
		}
		if err := uow.MenuItemRepository().Create(ctx, item); err != nil {
			return err
		}
		if len(in.Children) > 0 {
			id := item.Id
			if err := writeMenuItems(ctx, uow, menuId, &id, in.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *menuService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.MenuRepository(), "Menu", id); err != nil {
		return err
	}
	if err := uow.MenuRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "menu", id, events.ActionDeleted)
	return nil
}
