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

type IPricingSectionService interface {
	GetAll(ctx context.Context) ([]*entity.PricingSection, error)
	Show(ctx context.Context, id int) (*entity.PricingSection, error)
	Create(ctx context.Context, req *dto.CreatePricingSectionRequest) (*entity.PricingSection, error)
	Update(ctx context.Context, req *dto.UpdatePricingSectionRequest) (*entity.PricingSection, error)
	Delete(ctx context.Context, id int) error
}

type pricingSectionService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewPricingSectionService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IPricingSectionService {
	return &pricingSectionService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
	}
}

var pricingPlans = specification.Preload{Relation: "Plans", Order: "sort_order ASC, id ASC"}

func (s *pricingSectionService) GetAll(ctx context.Context) ([]*entity.PricingSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PricingSectionRepository().FindAll(ctx, pricingPlans, specification.OrderBy{Field: "id"})
}

func (s *pricingSectionService) Show(ctx context.Context, id int) (*entity.PricingSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.PricingSectionRepository(), "Pricing section", id, pricingPlans)
}

func pricingPlansFrom(inputs []*dto.PricingPlanInput) []*entity.PricingPlan {
	plans := make([]*entity.PricingPlan, 0, len(inputs))
	for i, in := range inputs {
		if in == nil {
			continue
		}
		features := in.Features
		if features == nil {
			features = []string{}
		}
		plans = append(plans, &entity.PricingPlan{
			Name:          in.Name,
			Description:   in.Description,
			Price:         in.Price,
			BillingPeriod: orDefault(in.BillingPeriod, "month"),
			Features:      features,
			CtaText:       orDefault(in.CtaText, "Get started"),
			CtaUrl:        orDefault(in.CtaUrl, "#"),
			IsPopular:     in.IsPopular,
			SortOrder:     positionOr(in.SortOrder, i),
			IsActive:      boolOr(in.IsActive, true),
		})
	}
	return plans
}

func (s *pricingSectionService) Create(ctx context.Context, req *dto.CreatePricingSectionRequest) (*entity.PricingSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	section := &entity.PricingSection{
		Heading:    req.Heading,
		Subheading: req.Subheading,
		IsActive:   boolOr(req.IsActive, true),
		Plans:      pricingPlansFrom(req.Plans),
	}
	if err := uow.PricingSectionRepository().Create(ctx, section); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "pricing_section", section.Id, events.ActionCreated)
	return s.Show(ctx, section.Id)
}

// Update replaces the plan list wholesale when plans is present.
func (s *pricingSectionService) Update(ctx context.Context, req *dto.UpdatePricingSectionRequest) (*entity.PricingSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	section, err := findOr404(ctx, uow.PricingSectionRepository(), "Pricing section", req.Id, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if req.Heading != nil {
		section.Heading = *req.Heading
	}
	if req.Subheading != nil {
		section.Subheading = nilIfBlank(*req.Subheading)
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if err := uow.PricingSectionRepository().Update(ctx, section); err != nil {
		return nil, err
	}

	if req.Plans != nil {
		plans := uow.PricingPlanRepository()
		if err := plans.DeleteAll(ctx, specification.Filter("pricing_section_id", section.Id)); err != nil {
			return nil, err
		}
		for _, plan := range pricingPlansFrom(*req.Plans) {
			plan.PricingSectionId = section.Id
			if err := plans.Create(ctx, plan); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "pricing_section", section.Id, events.ActionUpdated)
	return s.Show(ctx, section.Id)
}

func (s *pricingSectionService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.PricingSectionRepository(), "Pricing section", id); err != nil {
		return err
	}
	if err := inUseBy(ctx, uow.PageSectionRepository(), "pricing_section_id", "This pricing section", id); err != nil {
		return err
	}
	if err := uow.PricingSectionRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "pricing_section", id, events.ActionDeleted)
	return nil
}
