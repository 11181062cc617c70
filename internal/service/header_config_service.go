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

const duplicateHeaderCTAMessage = "This CTA is already in the header"

type IHeaderConfigService interface {
	GetActive(ctx context.Context) (*entity.HeaderConfig, error)
	// Replace makes req the only active configuration. id 0 creates a new row.
	Replace(ctx context.Context, id int, req *dto.HeaderConfigRequest) (*entity.HeaderConfig, error)
	AddCta(ctx context.Context, req *dto.AddHeaderCTARequest) (*entity.HeaderConfig, error)
	RemoveCta(ctx context.Context, headerCtaId int) (*entity.HeaderConfig, error)
	ToggleCtaVisibility(ctx context.Context, headerCtaId int, visible *bool) (*entity.HeaderConfig, error)
}

type headerConfigService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
	log        logger.ILogger
}

func NewHeaderConfigService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IHeaderConfigService {
	return &headerConfigService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
		log:        log,
	}
}

func headerTree() []specification.Specification {
	return []specification.Specification{
		specification.Preload{Relation: "NavItems", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "NavItems.Page"},
		specification.Preload{Relation: "HeaderCTAs", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "HeaderCTAs.Cta"},
		specification.Preload{Relation: "Menus", Order: "sort_order ASC, id ASC"},
		specification.Preload{Relation: "Menus.Menu"},
		specification.Preload{Relation: "Menus.Menu.Items", Order: "sort_order ASC, id ASC"},
	}
}

func activeHeader(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.HeaderConfig, error) {
	specs := append(headerTree(), specification.Active{}, specification.OrderBy{Field: "id", Desc: true})
	return uow.HeaderConfigRepository().FindOne(ctx, specs...)
}

// GetActive returns nil when no configuration has been saved yet.
func (s *headerConfigService) GetActive(ctx context.Context) (*entity.HeaderConfig, error) {
	return activeHeader(ctx, s.uowFactory.NewUnitOfWork(ctx))
}

func (s *headerConfigService) children(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.HeaderConfigRequest) ([]*entity.HeaderNavItem, []*entity.HeaderCTA, []*entity.HeaderConfigMenu, error) {
	navItems := make([]*entity.HeaderNavItem, 0, len(req.NavItems))
	for i, in := range req.NavItems {
		if in.PageId != nil {
			if err := mustExist(ctx, uow.PageRepository(), "Page", *in.PageId); err != nil {
				return nil, nil, nil, err
			}
		}
		navItems = append(navItems, &entity.HeaderNavItem{
			PageId:     in.PageId,
			CustomText: in.CustomText,
			CustomUrl:  in.CustomUrl,
			SortOrder:  positionOr(in.SortOrder, i),
			IsVisible:  boolOr(in.IsVisible, true),
		})
	}

	seen := make(map[int]struct{}, len(req.HeaderCTAs))
	ctas := make([]*entity.HeaderCTA, 0, len(req.HeaderCTAs))
	for i, in := range req.HeaderCTAs {
		if _, dup := seen[in.CtaId]; dup {
			return nil, nil, nil, apperror.Conflict(duplicateHeaderCTAMessage)
		}
		seen[in.CtaId] = struct{}{}
		if err := mustExist(ctx, uow.CTARepository(), "CTA", in.CtaId); err != nil {
			return nil, nil, nil, err
		}
		ctas = append(ctas, &entity.HeaderCTA{
			CtaId:     in.CtaId,
			SortOrder: positionOr(in.SortOrder, i),
			IsVisible: boolOr(in.IsVisible, true),
		})
	}

	menus := make([]*entity.HeaderConfigMenu, 0, len(req.Menus))
	for i, in := range req.Menus {
		if err := mustExist(ctx, uow.MenuRepository(), "Menu", in.MenuId); err != nil {
			return nil, nil, nil, err
		}
		menus = append(menus, &entity.HeaderConfigMenu{
			MenuId:    in.MenuId,
			SortOrder: positionOr(in.SortOrder, i),
		})
	}
	return navItems, ctas, menus, nil
}

// positionOr is the explicit sortOrder, or the 1-based list position.
func positionOr(v *int, index int) int {
	if v != nil {
		return *v
	}
	return index + 1
}

func (s *headerConfigService) Replace(ctx context.Context, id int, req *dto.HeaderConfigRequest) (*entity.HeaderConfig, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	navItems, ctas, menus, err := s.children(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	repo := uow.HeaderConfigRepository()
	header := &entity.HeaderConfig{}
	if id > 0 {
		header, err = findOr404(ctx, repo, "Header configuration", id, specification.ForUpdate{})
		if err != nil {
			return nil, err
		}
	}

	if err := repo.DeactivateAll(ctx); err != nil {
		return nil, err
	}

	header.IsActive = true
	header.BackgroundColor = orDefault(req.BackgroundColor, "#ffffff")
	header.TextColor = orDefault(req.TextColor, "#0f172a")
	header.HoverColor = orDefault(req.HoverColor, "#2563eb")
	header.ActiveColor = orDefault(req.ActiveColor, "#1d4ed8")
	header.LogoUrl = req.LogoUrl
	header.IsSticky = req.IsSticky

	if header.Id == 0 {
		header.NavItems, header.HeaderCTAs, header.Menus = navItems, ctas, menus
		if err := repo.Create(ctx, header); err != nil {
			return nil, duplicateAs(err, duplicateHeaderCTAMessage)
		}
	} else {
		if err := s.replaceChildren(ctx, uow, header.Id, navItems, ctas, menus); err != nil {
			return nil, err
		}
		if err := repo.Update(ctx, header); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("HEADER", "Header configuration saved", map[string]interface{}{
		"id":       header.Id,
		"navItems": len(navItems),
		"ctas":     len(ctas),
		"menus":    len(menus),
	})
	s.notifier.changed(ctx, "header_config", header.Id, events.ActionUpdated)
	return s.GetActive(ctx)
}

func (s *headerConfigService) replaceChildren(ctx context.Context, uow unitofwork.UnitOfWork, headerId int, navItems []*entity.HeaderNavItem, ctas []*entity.HeaderCTA, menus []*entity.HeaderConfigMenu) error {
	owned := specification.ByHeaderConfigID{HeaderConfigID: headerId}
	if err := uow.HeaderNavItemRepository().DeleteAll(ctx, owned); err != nil {
		return err
	}
	if err := uow.HeaderCTARepository().DeleteAll(ctx, owned); err != nil {
		return err
	}
	if err := uow.HeaderConfigMenuRepository().DeleteAll(ctx, owned); err != nil {
		return err
	}

	for _, n := range navItems {
		n.HeaderConfigId = headerId
		if err := uow.HeaderNavItemRepository().Create(ctx, n); err != nil {
			return err
		}
	}
	for _, c := range ctas {
		c.HeaderConfigId = headerId
		if err := uow.HeaderCTARepository().Create(ctx, c); err != nil {
			return duplicateAs(err, duplicateHeaderCTAMessage)
		}
	}
	for _, m := range menus {
		m.HeaderConfigId = headerId
		if err := uow.HeaderConfigMenuRepository().Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *headerConfigService) AddCta(ctx context.Context, req *dto.AddHeaderCTARequest) (*entity.HeaderConfig, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	header, err := uow.HeaderConfigRepository().FindOne(ctx, specification.Active{}, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, apperror.NotFound("No active header configuration")
	}
	if err := mustExist(ctx, uow.CTARepository(), "CTA", req.CtaId); err != nil {
		return nil, err
	}

	repo := uow.HeaderCTARepository()
	owned := specification.ByHeaderConfigID{HeaderConfigID: header.Id}
	existing, err := repo.Count(ctx, owned, specification.Filter("cta_id", req.CtaId))
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Conflict(duplicateHeaderCTAMessage)
	}

	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return repo.NextSortOrder(ctx, owned)
	})
	if err != nil {
		return nil, err
	}
	link := &entity.HeaderCTA{
		HeaderConfigId: header.Id,
		CtaId:          req.CtaId,
		SortOrder:      sortOrder,
		IsVisible:      boolOr(req.IsVisible, true),
	}
	if err := repo.Create(ctx, link); err != nil {
		return nil, duplicateAs(err, duplicateHeaderCTAMessage)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifier.changed(ctx, "header_config", header.Id, events.ActionUpdated)
	return s.GetActive(ctx)
}

func (s *headerConfigService) RemoveCta(ctx context.Context, headerCtaId int) (*entity.HeaderConfig, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	link, err := findOr404(ctx, uow.HeaderCTARepository(), "Header CTA", headerCtaId)
	if err != nil {
		return nil, err
	}
	if err := uow.HeaderCTARepository().Delete(ctx, link.Id); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "header_config", link.HeaderConfigId, events.ActionUpdated)
	return s.GetActive(ctx)
}

// ToggleCtaVisibility sets visibility, or flips it when visible is nil.
func (s *headerConfigService) ToggleCtaVisibility(ctx context.Context, headerCtaId int, visible *bool) (*entity.HeaderConfig, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	link, err := findOr404(ctx, uow.HeaderCTARepository(), "Header CTA", headerCtaId)
	if err != nil {
		return nil, err
	}
	link.IsVisible = boolOr(visible, !link.IsVisible)
	if err := uow.HeaderCTARepository().Update(ctx, link); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "header_config", link.HeaderConfigId, events.ActionUpdated)
	return s.GetActive(ctx)
}
