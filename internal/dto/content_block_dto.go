package dto

type CreateCTARequest struct {
	Text     string  `json:"text" validate:"required,max=255"`
	Url      string  `json:"url" validate:"required,max=1024"`
	Icon     *string `json:"icon" validate:"omitempty,icon"`
	Style    string  `json:"style" validate:"omitempty,oneof=primary secondary outline ghost link gradient"`
	Target   string  `json:"target" validate:"omitempty,oneof=_self _blank"`
	IsActive *bool   `json:"isActive"`
}

type UpdateCTARequest struct {
	Id       int     `json:"id"`
	Text     *string `json:"text" validate:"omitempty,min=1,max=255"`
	Url      *string `json:"url" validate:"omitempty,min=1,max=1024"`
	Icon     *string `json:"icon" validate:"omitempty,icon"`
	Style    *string `json:"style" validate:"omitempty,oneof=primary secondary outline ghost link gradient"`
	Target   *string `json:"target" validate:"omitempty,oneof=_self _blank"`
	IsActive *bool   `json:"isActive"`
}

// HeroSectionRequest is used for create and update. On update only present keys are written;
// send ctaPrimaryId 0 to clear a button.
type HeroSectionRequest struct {
	Id                  int     `json:"id"`
	Name                *string `json:"name" validate:"omitempty,min=1,max=255"`
	LayoutType          *string `json:"layoutType" validate:"omitempty,max=50"`
	Tagline             *string `json:"tagline" validate:"omitempty,max=255"`
	Headline            *string `json:"headline" validate:"omitempty,min=1"`
	Subheading          *string `json:"subheading"`
	TaglineColor        *string `json:"taglineColor" validate:"omitempty,max=64"`
	HeadlineColor       *string `json:"headlineColor" validate:"omitempty,max=64"`
	SubheadingColor     *string `json:"subheadingColor" validate:"omitempty,max=64"`
	CtaPrimaryId        *int    `json:"ctaPrimaryId" validate:"omitempty,gte=0"`
	CtaSecondaryId      *int    `json:"ctaSecondaryId" validate:"omitempty,gte=0"`
	BackgroundType      *string `json:"backgroundType" validate:"omitempty,max=32"`
	BackgroundValue     *string `json:"backgroundValue"`
	MediaType           *string `json:"mediaType" validate:"omitempty,max=32"`
	MediaUrl            *string `json:"mediaUrl" validate:"omitempty,max=1024"`
	MediaAlt            *string `json:"mediaAlt" validate:"omitempty,max=255"`
	PaddingTop          *string `json:"paddingTop" validate:"omitempty,max=32"`
	PaddingBottom       *string `json:"paddingBottom" validate:"omitempty,max=32"`
	ContainerMaxWidth   *string `json:"containerMaxWidth" validate:"omitempty,max=32"`
	ShowTypingEffect    *bool   `json:"showTypingEffect"`
	ShowBackgroundGrid  *bool   `json:"showBackgroundGrid"`
	ShowScrollIndicator *bool   `json:"showScrollIndicator"`
	IsActive            *bool   `json:"isActive"`
}

type MediaSectionFeatureInput struct {
	Icon      string `json:"icon" validate:"required,icon"`
	Label     string `json:"label" validate:"required,max=255"`
	Color     string `json:"color" validate:"omitempty,max=64"`
	SortOrder *int   `json:"sortOrder" validate:"omitempty,gte=0"`
}

type CreateMediaSectionRequest struct {
	Headline   string                      `json:"headline" validate:"required"`
	Subheading *string                     `json:"subheading"`
	MediaType  string                      `json:"mediaType" validate:"omitempty,oneof=image video"`
	MediaUrl   string                      `json:"mediaUrl" validate:"required,max=1024"`
	MediaAlt   *string                     `json:"mediaAlt" validate:"omitempty,max=255"`
	LayoutType string                      `json:"layoutType" validate:"omitempty,max=50"`
	BadgeText  *string                     `json:"badgeText" validate:"omitempty,max=255"`
	IsActive   *bool                       `json:"isActive"`
	Features   []*MediaSectionFeatureInput `json:"features" validate:"omitempty,dive"`
}

// UpdateMediaSectionRequest replaces the whole chip list when features is present.
type UpdateMediaSectionRequest struct {
	Id         int                          `json:"id"`
	Headline   *string                      `json:"headline" validate:"omitempty,min=1"`
	Subheading *string                      `json:"subheading"`
	MediaType  *string                      `json:"mediaType" validate:"omitempty,oneof=image video"`
	MediaUrl   *string                      `json:"mediaUrl" validate:"omitempty,min=1,max=1024"`
	MediaAlt   *string                      `json:"mediaAlt" validate:"omitempty,max=255"`
	LayoutType *string                      `json:"layoutType" validate:"omitempty,max=50"`
	BadgeText  *string                      `json:"badgeText" validate:"omitempty,max=255"`
	IsActive   *bool                        `json:"isActive"`
	Features   *[]*MediaSectionFeatureInput `json:"features" validate:"omitempty,dive"`
}

type CreateMediaSectionFeatureRequest struct {
	MediaSectionId int `json:"mediaSectionId" validate:"required,gt=0"`
	MediaSectionFeatureInput
}

type UpdateMediaSectionFeatureRequest struct {
	Id        int     `json:"id"`
	Icon      *string `json:"icon" validate:"omitempty,icon"`
	Label     *string `json:"label" validate:"omitempty,min=1,max=255"`
	Color     *string `json:"color" validate:"omitempty,max=64"`
	SortOrder *int    `json:"sortOrder" validate:"omitempty,gte=0"`
}

type PricingPlanInput struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Description   *string  `json:"description"`
	Price         string   `json:"price" validate:"required,max=64"`
	BillingPeriod string   `json:"billingPeriod" validate:"omitempty,max=32"`
	Features      []string `json:"features"`
	CtaText       string   `json:"ctaText" validate:"omitempty,max=255"`
	CtaUrl        string   `json:"ctaUrl" validate:"omitempty,max=1024"`
	IsPopular     bool     `json:"isPopular"`
	SortOrder     *int     `json:"sortOrder" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"isActive"`
}

type CreatePricingSectionRequest struct {
	Heading    string              `json:"heading" validate:"required,max=255"`
	Subheading *string             `json:"subheading"`
	IsActive   *bool               `json:"isActive"`
	Plans      []*PricingPlanInput `json:"plans" validate:"omitempty,dive"`
}

// UpdatePricingSectionRequest replaces every plan when plans is present.
type UpdatePricingSectionRequest struct {
	Id         int                  `json:"id"`
	Heading    *string              `json:"heading" validate:"omitempty,min=1,max=255"`
	Subheading *string              `json:"subheading"`
	IsActive   *bool                `json:"isActive"`
	Plans      *[]*PricingPlanInput `json:"plans" validate:"omitempty,dive"`
}
