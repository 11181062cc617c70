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

type ICTAService interface {
	GetAll(ctx context.Context) ([]*entity.CTA, error)
	Show(ctx context.Context, id int) (*entity.CTA, error)
	Create(ctx context.Context, req *dto.CreateCTARequest) (*entity.CTA, error)
	Update(ctx context.Context, req *dto.UpdateCTARequest) (*entity.CTA, error)
	Delete(ctx context.Context, id int) error
}

type ctaService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewCTAService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) ICTAService {
	return &ctaService{
		uowFactory: uowFactory,
		notifier:   newContentNotifier(publisher, log),
	}
}

func (s *ctaService) GetAll(ctx context.Context) ([]*entity.CTA, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CTARepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *ctaService) Show(ctx context.Context, id int) (*entity.CTA, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.CTARepository(), "CTA", id)
}

func (s *ctaService) Create(ctx context.Context, req *dto.CreateCTARequest) (*entity.CTA, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cta := &entity.CTA{
		Text:     req.Text,
		Url:      req.Url,
		Icon:     req.Icon,
		Style:    entity.CTAStyle(orDefault(req.Style, string(entity.CTAStylePrimary))),
		Target:   orDefault(req.Target, "_self"),
		IsActive: boolOr(req.IsActive, true),
	}
	if err := uow.CTARepository().Create(ctx, cta); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "cta", cta.Id, events.ActionCreated)
	return cta, nil
}

func (s *ctaService) Update(ctx context.Context, req *dto.UpdateCTARequest) (*entity.CTA, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cta, err := findOr404(ctx, uow.CTARepository(), "CTA", req.Id)
	if err != nil {
		return nil, err
	}
	if req.Text != nil {
		cta.Text = *req.Text
	}
	if req.Url != nil {
		cta.Url = *req.Url
	}
	if req.Icon != nil {
		cta.Icon = nilIfBlank(*req.Icon)
	}
	if req.Style != nil {
		cta.Style = entity.CTAStyle(*req.Style)
	}
	if req.Target != nil {
		cta.Target = *req.Target
	}
	if req.IsActive != nil {
		cta.IsActive = *req.IsActive
	}
	if err := uow.CTARepository().Update(ctx, cta); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "cta", cta.Id, events.ActionUpdated)
	return cta, nil
}

// Delete clears hero buttons that pointed at the CTA and drops it from the header.
func (s *ctaService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.CTARepository(), "CTA", id); err != nil {
		return err
	}
	if err := uow.CTARepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "cta", id, events.ActionDeleted)
	return nil
}
