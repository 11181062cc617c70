package mapper

import (
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"
)

type FaqCategoryMapper struct{}

func NewFaqCategoryMapper() *FaqCategoryMapper {
	return &FaqCategoryMapper{}
}

func (m *FaqCategoryMapper) ToEntity(c *model.FaqCategory) *entity.FaqCategory {
	if c == nil {
		return nil
	}
	out := &entity.FaqCategory{
		Id:        c.Id,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if len(c.Faqs) > 0 {
		faqs := NewFaqMapper()
		out.Faqs = mapSlice(c.Faqs, faqs.ToEntity)
	}
	return out
}

func (m *FaqCategoryMapper) ToModel(c *entity.FaqCategory) *model.FaqCategory {
	if c == nil {
		return nil
	}
	return &model.FaqCategory{
		Id:        c.Id,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type FaqMapper struct{}

func NewFaqMapper() *FaqMapper {
	return &FaqMapper{}
}

func (m *FaqMapper) ToEntity(f *model.Faq) *entity.Faq {
	if f == nil {
		return nil
	}
	out := &entity.Faq{
		Id:         f.Id,
		CategoryId: f.CategoryId,
		Question:   f.Question,
		Answer:     f.Answer,
		SortOrder:  f.SortOrder,
		IsActive:   f.IsActive,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
	if f.Category != nil {
		out.Category = NewFaqCategoryMapper().ToEntity(f.Category)
	}
	return out
}

func (m *FaqMapper) ToModel(f *entity.Faq) *model.Faq {
	if f == nil {
		return nil
	}
	return &model.Faq{
		Id:         f.Id,
		CategoryId: f.CategoryId,
		Question:   f.Question,
		Answer:     f.Answer,
		SortOrder:  f.SortOrder,
		IsActive:   f.IsActive,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

type FaqSectionMapper struct {
	categories *FaqCategoryMapper
}

func NewFaqSectionMapper() *FaqSectionMapper {
	return &FaqSectionMapper{categories: NewFaqCategoryMapper()}
}

func (m *FaqSectionMapper) ToEntity(s *model.FaqSection) *entity.FaqSection {
	if s == nil {
		return nil
	}
	return &entity.FaqSection{
		Id:         s.Id,
		Heading:    s.Heading,
		Subheading: s.Subheading,
		CategoryId: s.CategoryId,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Category:   m.categories.ToEntity(s.Category),
	}
}

func (m *FaqSectionMapper) ToModel(s *entity.FaqSection) *model.FaqSection {
	if s == nil {
		return nil
	}
	return &model.FaqSection{
		Id:         s.Id,
		Heading:    s.Heading,
		Subheading: s.Subheading,
		CategoryId: s.CategoryId,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
