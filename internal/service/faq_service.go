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

type IFaqCategoryService interface {
	GetAll(ctx context.Context) ([]*entity.FaqCategory, error)
	Show(ctx context.Context, id int) (*entity.FaqCategory, error)
	Create(ctx context.Context, req *dto.FaqCategoryRequest) (*entity.FaqCategory, error)
	Update(ctx context.Context, req *dto.FaqCategoryRequest) (*entity.FaqCategory, error)
	Delete(ctx context.Context, id int) error
}

type IFaqService interface {
	GetAll(ctx context.Context, categoryId int) ([]*entity.Faq, error)
	Show(ctx context.Context, id int) (*entity.Faq, error)
	Create(ctx context.Context, req *dto.FaqRequest) (*entity.Faq, error)
	Update(ctx context.Context, req *dto.FaqRequest) (*entity.Faq, error)
	Delete(ctx context.Context, id int) error
}

type IFaqSectionService interface {
	GetAll(ctx context.Context) ([]*entity.FaqSection, error)
	Show(ctx context.Context, id int) (*entity.FaqSection, error)
	Create(ctx context.Context, req *dto.FaqSectionRequest) (*entity.FaqSection, error)
	Update(ctx context.Context, req *dto.FaqSectionRequest) (*entity.FaqSection, error)
	Delete(ctx context.Context, id int) error
}

var orderedFaqs = specification.Preload{Relation: "Faqs", Order: "sort_order ASC, id ASC"}

// ---- categories ----

type faqCategoryService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewFaqCategoryService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IFaqCategoryService {
	return &faqCategoryService{uowFactory: uowFactory, notifier: newContentNotifier(publisher, log)}
}

func (s *faqCategoryService) GetAll(ctx context.Context) ([]*entity.FaqCategory, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FaqCategoryRepository().FindAll(ctx,
		orderedFaqs,
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	)
}

func (s *faqCategoryService) Show(ctx context.Context, id int) (*entity.FaqCategory, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.FaqCategoryRepository(), "FAQ category", id, orderedFaqs)
}

func (s *faqCategoryService) Create(ctx context.Context, req *dto.FaqCategoryRequest) (*entity.FaqCategory, error) {
	if req.Name == nil || *req.Name == "" {
		return nil, apperror.ValidationFailed("name: is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	categories := uow.FaqCategoryRepository()
	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return categories.NextSortOrder(ctx)
	})
	if err != nil {
		return nil, err
	}
	category := &entity.FaqCategory{
		Name:      *req.Name,
		SortOrder: sortOrder,
		IsActive:  boolOr(req.IsActive, true),
	}
	if err := categories.Create(ctx, category); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "faq_category", category.Id, events.ActionCreated)
	return category, nil
}

func (s *faqCategoryService) Update(ctx context.Context, req *dto.FaqCategoryRequest) (*entity.FaqCategory, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	category, err := findOr404(ctx, uow.FaqCategoryRepository(), "FAQ category", req.Id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := uow.FaqCategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "faq_category", category.Id, events.ActionUpdated)
	return category, nil
}

// Delete removes the category with its questions. FAQ sections filtering on it fall back to all FAQs.
func (s *faqCategoryService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.FaqCategoryRepository(), "FAQ category", id); err != nil {
		return err
	}
	if err := uow.FaqCategoryRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "faq_category", id, events.ActionDeleted)
	return nil
}

// ---- questions ----

type faqService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewFaqService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IFaqService {
	return &faqService{uowFactory: uowFactory, notifier: newContentNotifier(publisher, log)}
}

func (s *faqService) GetAll(ctx context.Context, categoryId int) ([]*entity.Faq, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.Preload{Relation: "Category"},
		specification.OrderBy{Field: "category_id"},
		specification.OrderBy{Field: "sort_order"},
		specification.OrderBy{Field: "id"},
	}
	if categoryId > 0 {
		specs = append(specs, specification.Filter("category_id", categoryId))
	}
	return uow.FaqRepository().FindAll(ctx, specs...)
}

func (s *faqService) Show(ctx context.Context, id int) (*entity.Faq, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOr404(ctx, uow.FaqRepository(), "FAQ", id, specification.Preload{Relation: "Category"})
}

func (s *faqService) Create(ctx context.Context, req *dto.FaqRequest) (*entity.Faq, error) {
	var missing []string
	if req.CategoryId == nil {
		missing = append(missing, "categoryId: is required")
	}
	if req.Question == nil || *req.Question == "" {
		missing = append(missing, "question: is required")
	}
	if req.Answer == nil || *req.Answer == "" {
		missing = append(missing, "answer: is required")
	}
	if len(missing) > 0 {
		return nil, apperror.ValidationFailed(missing...)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	categoryId := *req.CategoryId
	category, err := uow.FaqCategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId}, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.BadRequest("FAQ category %d does not exist", categoryId)
	}
	faqs := uow.FaqRepository()
	sortOrder, err := sortOrderOr(ctx, req.SortOrder, func(ctx context.Context) (int, error) {
		return faqs.NextSortOrder(ctx, specification.Filter("category_id", categoryId))
	})
	if err != nil {
		return nil, err
	}
	faq := &entity.Faq{
		CategoryId: categoryId,
		Question:   *req.Question,
		Answer:     *req.Answer,
		SortOrder:  sortOrder,
		IsActive:   boolOr(req.IsActive, true),
	}
	if err := faqs.Create(ctx, faq); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "faq", faq.Id, events.ActionCreated)
	return s.Show(ctx, faq.Id)
}

func (s *faqService) Update(ctx context.Context, req *dto.FaqRequest) (*entity.Faq, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	faq, err := findOr404(ctx, uow.FaqRepository(), "FAQ", req.Id)
	if err != nil {
		return nil, err
	}
	if req.CategoryId != nil && *req.CategoryId != faq.CategoryId {
		if err := mustExist(ctx, uow.FaqCategoryRepository(), "FAQ category", *req.CategoryId); err != nil {
			return nil, err
		}
		faq.CategoryId = *req.CategoryId
	}
	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.SortOrder != nil {
		faq.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}
	if err := uow.FaqRepository().Update(ctx, faq); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "faq", faq.Id, events.ActionUpdated)
	return s.Show(ctx, faq.Id)
}

func (s *faqService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.FaqRepository(), "FAQ", id); err != nil {
		return err
	}
	if err := uow.FaqRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "faq", id, events.ActionDeleted)
	return nil
}

// ---- sections ----

type faqSectionService struct {
	uowFactory unitofwork.RepositoryFactory
	notifier   contentNotifier
}

func NewFaqSectionService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IFaqSectionService {
	return &faqSectionService{uowFactory: uowFactory, notifier: newContentNotifier(publisher, log)}
}

func (s *faqSectionService) GetAll(ctx context.Context) ([]*entity.FaqSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FaqSectionRepository().FindAll(ctx,
		specification.Preload{Relation: "Category"},
		specification.OrderBy{Field: "id"},
	)
}

func (s *faqSectionService) Show(ctx context.Context, id int) (*entity.FaqSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	section, err := findOr404(ctx, uow.FaqSectionRepository(), "FAQ section", id, specification.Preload{Relation: "Category"})
	if err != nil {
		return nil, err
	}
	if section.Faqs, err = faqsFor(ctx, uow, section.CategoryId); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *faqSectionService) applyCategory(ctx context.Context, uow unitofwork.UnitOfWork, section *entity.FaqSection, categoryId *int) error {
	if categoryId == nil {
		return nil
	}
	if *categoryId > 0 {
		if err := mustExist(ctx, uow.FaqCategoryRepository(), "FAQ category", *categoryId); err != nil {
			return err
		}
	}
	section.CategoryId = positiveOrNil(categoryId)
	return nil
}

func (s *faqSectionService) Create(ctx context.Context, req *dto.FaqSectionRequest) (*entity.FaqSection, error) {
	if req.Heading == nil || *req.Heading == "" {
		return nil, apperror.ValidationFailed("heading: is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	section := &entity.FaqSection{
		Heading:    *req.Heading,
		Subheading: req.Subheading,
		IsActive:   boolOr(req.IsActive, true),
	}
	if err := s.applyCategory(ctx, uow, section, req.CategoryId); err != nil {
		return nil, err
	}
	if err := uow.FaqSectionRepository().Create(ctx, section); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "faq_section", section.Id, events.ActionCreated)
	return s.Show(ctx, section.Id)
}

func (s *faqSectionService) Update(ctx context.Context, req *dto.FaqSectionRequest) (*entity.FaqSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	section, err := findOr404(ctx, uow.FaqSectionRepository(), "FAQ section", req.Id)
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
	if err := s.applyCategory(ctx, uow, section, req.CategoryId); err != nil {
		return nil, err
	}
	if err := uow.FaqSectionRepository().Update(ctx, section); err != nil {
		return nil, err
	}
	s.notifier.changed(ctx, "faq_section", section.Id, events.ActionUpdated)
	return s.Show(ctx, section.Id)
}

func (s *faqSectionService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := findOr404(ctx, uow.FaqSectionRepository(), "FAQ section", id); err != nil {
		return err
	}
	if err := inUseBy(ctx, uow.PageSectionRepository(), "faq_section_id", "This FAQ section", id); err != nil {
		return err
	}
	if err := uow.FaqSectionRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, "faq_section", id, events.ActionDeleted)
	return nil
}
