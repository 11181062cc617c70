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

type IMediaSectionService interface {
	GetAll(ctx context.Context) ([]*entity.MediaSection, error)
	Show(ctx context.Context, id int) (*entity.MediaSection, error)
	Create(ctx context.Context, req *dto.CreateMediaSectionRequest) (*entity.MediaSection, error)
	Update(ctx context.Context, req *dto.UpdateMediaSectionRequest) (*entity.MediaSection, error)
	Delete(ctx context.Context, id int) error
}

type mediaSectionService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewMediaSectionService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IMediaSectionService {
	return &mediaSectionService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
	}
}

var mediaFeatures = specification.Preload{Relation: "Features", Order: "sort_order ASC, id ASC"}

func (s *mediaSectionService) GetAll(ctx context.Context) ([]*entity.MediaSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MediaSectionRepository().FindAll(ctx, mediaFeatures, specification.OrderBy{Field: "id"})
}

func (s *mediaSectionService) Show(ctx context.Context, id int) (*entity.MediaSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.MediaSectionRepository(), "Media section", id, mediaFeatures)
}

// mediaChips turns inputs into chips, numbering those without an explicit position by index.
func mediaChips(inputs []*dto.MediaSectionFeatureInput) []*entity.MediaSectionFeature {
	chips := make([]*entity.MediaSectionFeature, 0, len(inputs))
	for i, in := range inputs {
		if in == nil {
			continue
		}
		chips = append(chips, &entity.MediaSectionFeature{
			Icon:      in.Icon,
			Label:     in.Label,
			Color:     orDefault(in.Color, "blue"),
			SortOrder: positionOr(in.SortOrder, i),
		})
	}
	return chips
}

func (s *mediaSectionService) Create(ctx context.Context, req *dto.CreateMediaSectionRequest) (*entity.MediaSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	section := &entity.MediaSection{
		Headline:   req.Headline,
		Subheading: req.Subheading,
		MediaType:  orDefault(req.MediaType, "image"),
		MediaUrl:   req.MediaUrl,
		MediaAlt:   req.MediaAlt,
		LayoutType: orDefault(req.LayoutType, "media-right"),
		BadgeText:  req.BadgeText,
		IsActive:   boolOr(req.IsActive, true),
		Features:   mediaChips(req.Features),
	}
	if err := uow.MediaSectionRepository().Create(ctx, section); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "media_section", section.Id, events.ActionCreated)
	return s.Show(ctx, section.Id)
}

func (s *mediaSectionService) Update(ctx context.Context, req *dto.UpdateMediaSectionRequest) (*entity.MediaSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	section, err := findOr404(ctx, uow.MediaSectionRepository(), "Media section", req.Id, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if req.Headline != nil {
		section.Headline = *req.Headline
	}
	if req.Subheading != nil {
		section.Subheading = nilIfBlank(*req.Subheading)
	}
	if req.MediaType != nil {
		section.MediaType = *req.MediaType
	}
	if req.MediaUrl != nil {
		section.MediaUrl = *req.MediaUrl
	}
	if req.MediaAlt != nil {
		section.MediaAlt = nilIfBlank(*req.MediaAlt)
	}
	if req.LayoutType != nil {
		section.LayoutType = *req.LayoutType
	}
	if req.BadgeText != nil {
		section.BadgeText = nilIfBlank(*req.BadgeText)
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if err := uow.MediaSectionRepository().Update(ctx, section); err != nil {
		return nil, err
	}

	if req.Features != nil {
		chips := uow.MediaSectionFeatureRepository()
		if err := chips.DeleteAll(ctx, specification.Filter("media_section_id", section.Id)); err != nil {
			return nil, err
		}
		for _, chip := range mediaChips(*req.Features) {
			chip.MediaSectionId = section.Id
			if err := chips.Create(ctx, chip); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "media_section", section.Id, events.ActionUpdated)
	return s.Show(ctx, section.Id)
}

func (s *mediaSectionService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.MediaSectionRepository(), "Media section", id); err != nil {
		return err
	}
	if err := inUseBy(ctx, uow.PageSectionRepository(), "media_section_id", "This media section", id); err != nil {
		return err
	}
	if err := uow.MediaSectionRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "media_section", id, events.ActionDeleted)
	return nil
}

// IMediaSectionFeatureService edits single chips of a media section.
type IMediaSectionFeatureService interface {
	GetAll(ctx context.Context, mediaSectionId int) ([]*entity.MediaSectionFeature, error)
	Create(ctx context.Context, req *dto.CreateMediaSectionFeatureRequest) (*entity.MediaSectionFeature, error)
	Update(ctx context.Context, req *dto.UpdateMediaSectionFeatureRequest) (*entity.MediaSectionFeature, error)
	Delete(ctx context.Context, id int) error
}

type mediaSectionFeatureService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewMediaSectionFeatureService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IMediaSectionFeatureService {
	return &mediaSectionFeatureService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
	}
}

func (s *mediaSectionFeatureService) GetAll(ctx context.Context, mediaSectionId int) ([]*entity.MediaSectionFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	}
	if mediaSectionId > 0 {
		specs = append(specs, specification.Filter("media_section_id", mediaSectionId))
	}
	return uow.MediaSectionFeatureRepository().FindAll(ctx, specs...)
}

func (s *mediaSectionFeatureService) Create(ctx context.Context, req *dto.CreateMediaSectionFeatureRequest) (*entity.MediaSectionFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := findOr404(ctx, uow.MediaSectionRepository(), "Media section", req.MediaSectionId, specification.ForUpdate{}); err != nil {
		return nil, err
	}
	chips := uow.MediaSectionFeatureRepository()
	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return chips.NextSortOrder(ctx, specification.Filter("media_section_id", req.MediaSectionId))
	})
	if err != nil {
		return nil, err
	}
	chip := &entity.MediaSectionFeature{
		MediaSectionId: req.MediaSectionId,
		Icon:           req.Icon,
		Label:          req.Label,
		Color:          orDefault(req.Color, "blue"),
		SortOrder:      sortOrder,
	}
	if err := chips.Create(ctx, chip); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "media_section", chip.MediaSectionId, events.ActionUpdated)
	return chip, nil
}

func (s *mediaSectionFeatureService) Update(ctx context.Context, req *dto.UpdateMediaSectionFeatureRequest) (*entity.MediaSectionFeature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chip, err := findOr404(ctx, uow.MediaSectionFeatureRepository(), "Media section feature", req.Id)
	if err != nil {
		return nil, err
	}
	if req.Icon != nil {
		chip.Icon = *req.Icon
	}
	if req.Label != nil {
		chip.Label = *req.Label
	}
	if req.Color != nil {
		chip.Color = *req.Color
	}
	if req.SortOrder != nil {
		chip.SortOrder = *req.SortOrder
	}
	if err := uow.MediaSectionFeatureRepository().Update(ctx, chip); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "media_section", chip.MediaSectionId, events.ActionUpdated)
	return chip, nil
}

func (s *mediaSectionFeatureService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chip, err := findOr404(ctx, uow.MediaSectionFeatureRepository(), "Media section feature", id)
	if err != nil {
		return err
	}
	if err := uow.MediaSectionFeatureRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "media_section", chip.MediaSectionId, events.ActionUpdated)
	return nil
}
