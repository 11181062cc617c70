package dto

import "sitebuilder-be/internal/entity"

type CreatePageSectionRequest struct {
	PageId           int     `json:"pageId" validate:"required,gt=0"`
	SectionType      string  `json:"sectionType" validate:"required,oneof=hero features media pricing faq text"`
	HeroSectionId    *int    `json:"heroSectionId" validate:"omitempty,gt=0"`
	FeatureGroupId   *int    `json:"featureGroupId" validate:"omitempty,gt=0"`
	MediaSectionId   *int    `json:"mediaSectionId" validate:"omitempty,gt=0"`
	PricingSectionId *int    `json:"pricingSectionId" validate:"omitempty,gt=0"`
	FaqSectionId     *int    `json:"faqSectionId" validate:"omitempty,gt=0"`
	SortOrder        *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible        *bool   `json:"isVisible"`
	Title            *string `json:"title" validate:"omitempty,max=255"`
	Subtitle         *string `json:"subtitle"`
	Content          *string `json:"content"`
}

func (r *CreatePageSectionRequest) Refs() entity.SectionRefs {
	return entity.SectionRefs{
		HeroSectionId:    r.HeroSectionId,
		FeatureGroupId:   r.FeatureGroupId,
		MediaSectionId:   r.MediaSectionId,
		PricingSectionId: r.PricingSectionId,
		FaqSectionId:     r.FaqSectionId,
	}
}

// UpdatePageSectionRequest changes the content block only when sectionType is sent;
// the foreign keys are then read as a complete set.
type UpdatePageSectionRequest struct {
	Id               int     `json:"id"`
	Action           string  `json:"action"`
	SectionType      *string `json:"sectionType" validate:"omitempty,oneof=hero features media pricing faq text"`
	HeroSectionId    *int    `json:"heroSectionId" validate:"omitempty,gt=0"`
	FeatureGroupId   *int    `json:"featureGroupId" validate:"omitempty,gt=0"`
	MediaSectionId   *int    `json:"mediaSectionId" validate:"omitempty,gt=0"`
	PricingSectionId *int    `json:"pricingSectionId" validate:"omitempty,gt=0"`
	FaqSectionId     *int    `json:"faqSectionId" validate:"omitempty,gt=0"`
	SortOrder        *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible        *bool   `json:"isVisible"`
	Title            *string `json:"title" validate:"omitempty,max=255"`
	Subtitle         *string `json:"subtitle"`
	Content          *string `json:"content"`
}

func (r *UpdatePageSectionRequest) Refs() entity.SectionRefs {
	return entity.SectionRefs{
		HeroSectionId:    r.HeroSectionId,
		FeatureGroupId:   r.FeatureGroupId,
		MediaSectionId:   r.MediaSectionId,
		PricingSectionId: r.PricingSectionId,
		FaqSectionId:     r.FaqSectionId,
	}
}

// ReorderSectionsRequest is the PATCH body {action: "reorder", pageId, sectionIds}.
type ReorderSectionsRequest struct {
	Action     string `json:"action" validate:"required,eq=reorder"`
	PageId     int    `json:"pageId" validate:"required,gt=0"`
	SectionIds []int  `json:"sectionIds" validate:"required,min=1,dive,gt=0"`
}
