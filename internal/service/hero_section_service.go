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

type IHeroSectionService interface {
	GetAll(ctx context.Context) ([]*entity.HeroSection, error)
	Show(ctx context.Context, id int) (*entity.HeroSection, error)
	Create(ctx context.Context, req *dto.HeroSectionRequest) (*entity.HeroSection, error)
	Update(ctx context.Context, req *dto.HeroSectionRequest) (*entity.HeroSection, error)
	Delete(ctx context.Context, id int) error
}

type heroSectionService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewHeroSectionService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IHeroSectionService {
	return &heroSectionService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
	}
}

func heroTree() []specification.Specification {
	return []specification.Specification{
		specification.Preload{Relation: "CtaPrimary"},
		specification.Preload{Relation: "CtaSecondary"},
	}
}

func (s *heroSectionService) GetAll(ctx context.Context) ([]*entity.HeroSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.HeroSectionRepository().FindAll(ctx, append(heroTree(), specification.OrderBy{Field: "id"})...)
}

func (s *heroSectionService) Show(ctx context.Context, id int) (*entity.HeroSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.HeroSectionRepository(), "Hero section", id, heroTree()...)
}

// applyHero copies present request fields onto h. CTA ids of 0 clear the button.
func applyHero(ctx context.Context, uow unitofwork.UnitOfWork, h *entity.HeroSection, req *dto.HeroSectionRequest) error {
	for _, ref := range []*int{req.CtaPrimaryId, req.CtaSecondaryId} {
		if ref != nil && *ref > 0 {
			if err := mustExist(ctx, uow.CTARepository(), "CTA", *ref); err != nil {
				return err
			}
		}
	}
	if req.CtaPrimaryId != nil {
		h.CtaPrimaryId = positiveOrNil(req.CtaPrimaryId)
	}
	if req.CtaSecondaryId != nil {
		h.CtaSecondaryId = positiveOrNil(req.CtaSecondaryId)
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setOptional := func(dst **string, src *string) {
		if src != nil {
			*dst = nilIfBlank(*src)
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&h.Name, req.Name)
	setString(&h.LayoutType, req.LayoutType)
	setOptional(&h.Tagline, req.Tagline)
	setString(&h.Headline, req.Headline)
	setOptional(&h.Subheading, req.Subheading)
	setOptional(&h.TaglineColor, req.TaglineColor)
	setOptional(&h.HeadlineColor, req.HeadlineColor)
	setOptional(&h.SubheadingColor, req.SubheadingColor)
	setString(&h.BackgroundType, req.BackgroundType)
	setOptional(&h.BackgroundValue, req.BackgroundValue)
	setString(&h.MediaType, req.MediaType)
	setOptional(&h.MediaUrl, req.MediaUrl)
	setOptional(&h.MediaAlt, req.MediaAlt)
	setString(&h.PaddingTop, req.PaddingTop)
	setString(&h.PaddingBottom, req.PaddingBottom)
	setString(&h.ContainerMaxWidth, req.ContainerMaxWidth)
	setBool(&h.ShowTypingEffect, req.ShowTypingEffect)
	setBool(&h.ShowBackgroundGrid, req.ShowBackgroundGrid)
	setBool(&h.ShowScrollIndicator, req.ShowScrollIndicator)
	setBool(&h.IsActive, req.IsActive)
	return nil
}

func (s *heroSectionService) Create(ctx context.Context, req *dto.HeroSectionRequest) (*entity.HeroSection, error) {
	var missing []string
	if req.Name == nil || *req.Name == "" {
		missing = append(missing, "name: is required")
	}
	if req.Headline == nil || *req.Headline == "" {
		missing = append(missing, "headline: is required")
	}
	if len(missing) > 0 {
		return nil, apperror.ValidationFailed(missing...)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	hero := &entity.HeroSection{
		LayoutType:        "centered",
		BackgroundType:    "none",
		MediaType:         "none",
		PaddingTop:        "lg",
		PaddingBottom:     "lg",
		ContainerMaxWidth: "7xl",
		IsActive:          true,
	}
	if err := applyHero(ctx, uow, hero, req); err != nil {
		return nil, err
	}
	if err := uow.HeroSectionRepository().Create(ctx, hero); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "hero_section", hero.Id, events.ActionCreated)
	return s.Show(ctx, hero.Id)
}

func (s *heroSectionService) Update(ctx context.Context, req *dto.HeroSectionRequest) (*entity.HeroSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	hero, err := findOr404(ctx, uow.HeroSectionRepository(), "Hero section", req.Id)
	if err != nil {
		return nil, err
	}
	if err := applyHero(ctx, uow, hero, req); err != nil {
		return nil, err
	}
	if err := uow.HeroSectionRepository().Update(ctx, hero); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "hero_section", hero.Id, events.ActionUpdated)
	return s.Show(ctx, hero.Id)
}

// Delete refuses while the hero is still placed on a page.
func (s *heroSectionService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.HeroSectionRepository(), "Hero section", id); err != nil {
		return err
	}
	if err := inUseBy(ctx, uow.PageSectionRepository(), "hero_section_id", "This hero section", id); err != nil {
		return err
	}
	if err := uow.HeroSectionRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "hero_section", id, events.ActionDeleted)
	return nil
}
