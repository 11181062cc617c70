package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SectionType string

const (
	SectionTypeHero     SectionType = "hero"
	SectionTypeFeatures SectionType = "features"
	SectionTypeMedia    SectionType = "media"
	SectionTypePricing  SectionType = "pricing"
	SectionTypeFaq      SectionType = "faq"
	SectionTypeText     SectionType = "text"
)

var (
	ErrUnknownSectionType = errors.New("unknown section type")
	ErrSectionRefMismatch = errors.New("section type does not match the referenced content")
)

// SectionContent is what a page section shows: exactly one content block of the kind named
// by its type, or inline text only. The zero value is invalid; build it with the
// constructors or ParseSectionContent.
type SectionContent struct {
	kind  SectionType
	refId int
}

func HeroBlock(id int) SectionContent { return SectionContent{kind: SectionTypeHero, refId: id} }
func FeatureGroupBlock(id int) SectionContent {
	return SectionContent{kind: SectionTypeFeatures, refId: id}
}
func MediaBlock(id int) SectionContent   { return SectionContent{kind: SectionTypeMedia, refId: id} }
func PricingBlock(id int) SectionContent { return SectionContent{kind: SectionTypePricing, refId: id} }
func FaqBlock(id int) SectionContent     { return SectionContent{kind: SectionTypeFaq, refId: id} }
func TextBlock() SectionContent          { return SectionContent{kind: SectionTypeText} }

func (c SectionContent) Type() SectionType { return c.kind }
func (c SectionContent) RefId() int        { return c.refId }
func (c SectionContent) IsZero() bool      { return c.kind == "" }

func (c SectionContent) ref(kind SectionType) *int {
	if c.kind != kind || c.refId == 0 {
		return nil
	}
	id := c.refId
	return &id
}

func (c SectionContent) HeroSectionId() *int    { return c.ref(SectionTypeHero) }
func (c SectionContent) FeatureGroupId() *int   { return c.ref(SectionTypeFeatures) }
func (c SectionContent) MediaSectionId() *int   { return c.ref(SectionTypeMedia) }
func (c SectionContent) PricingSectionId() *int { return c.ref(SectionTypePricing) }
func (c SectionContent) FaqSectionId() *int     { return c.ref(SectionTypeFaq) }

// SectionRefs is the wire/column shape: one nullable foreign key per content kind.
type SectionRefs struct {
	HeroSectionId    *int
	FeatureGroupId   *int
	MediaSectionId   *int
	PricingSectionId *int
	FaqSectionId     *int
}

func (c SectionContent) Refs() SectionRefs {
	return SectionRefs{
		HeroSectionId:    c.HeroSectionId(),
		FeatureGroupId:   c.FeatureGroupId(),
		MediaSectionId:   c.MediaSectionId(),
		PricingSectionId: c.PricingSectionId(),
		FaqSectionId:     c.FaqSectionId(),
	}
}

// ParseSectionContent checks that the discriminator and the populated foreign keys agree:
// the key matching sectionType must be set, every other key must be empty.
func ParseSectionContent(sectionType string, refs SectionRefs) (SectionContent, error) {
	kind := SectionType(sectionType)
	byKind := map[SectionType]*int{
		SectionTypeHero:     refs.HeroSectionId,
		SectionTypeFeatures: refs.FeatureGroupId,
		SectionTypeMedia:    refs.MediaSectionId,
		SectionTypePricing:  refs.PricingSectionId,
		SectionTypeFaq:      refs.FaqSectionId,
	}

	if kind != SectionTypeText {
		if _, ok := byKind[kind]; !ok {
			return SectionContent{}, fmt.Errorf("%w: %q", ErrUnknownSectionType, sectionType)
		}
	}

	for k, id := range byKind {
		set := id != nil && *id > 0
		if k == kind && !set {
			return SectionContent{}, fmt.Errorf("%w: %s section needs %s", ErrSectionRefMismatch, kind, refField(k))
		}
		if k != kind && set {
			return SectionContent{}, fmt.Errorf("%w: %s section cannot reference %s", ErrSectionRefMismatch, kind, refField(k))
		}
	}

	if kind == SectionTypeText {
		return TextBlock(), nil
	}
	return SectionContent{kind: kind, refId: *byKind[kind]}, nil
}

func refField(kind SectionType) string {
	switch kind {
	case SectionTypeHero:
		return "heroSectionId"
	case SectionTypeFeatures:
		return "featureGroupId"
	case SectionTypeMedia:
		return "mediaSectionId"
	case SectionTypePricing:
		return "pricingSectionId"
	case SectionTypeFaq:
		return "faqSectionId"
	}
	return string(kind)
}

// PageSection is an ordered slot on a page.
type PageSection struct {
	Id        int
	PageId    int
	Block     SectionContent
	SortOrder int
	IsVisible bool
	Title     *string
	Subtitle  *string
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// resolved content, populated on reads
	HeroSection    *HeroSection
	FeatureGroup   *FeatureGroup
	MediaSection   *MediaSection
	PricingSection *PricingSection
	FaqSection     *FaqSection
}

type pageSectionJSON struct {
	Id               int             `json:"id"`
	PageId           int             `json:"pageId"`
	SectionType      SectionType     `json:"sectionType"`
	SortOrder        int             `json:"sortOrder"`
	IsVisible        bool            `json:"isVisible"`
	Title            *string         `json:"title"`
	Subtitle         *string         `json:"subtitle"`
	Content          *string         `json:"content"`
	HeroSectionId    *int            `json:"heroSectionId"`
	FeatureGroupId   *int            `json:"featureGroupId"`
	MediaSectionId   *int            `json:"mediaSectionId"`
	PricingSectionId *int            `json:"pricingSectionId"`
	FaqSectionId     *int            `json:"faqSectionId"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	HeroSection      *HeroSection    `json:"heroSection,omitempty"`
	FeatureGroup     *FeatureGroup   `json:"featureGroup,omitempty"`
	MediaSection     *MediaSection   `json:"mediaSection,omitempty"`
	PricingSection   *PricingSection `json:"pricingSection,omitempty"`
	FaqSection       *FaqSection     `json:"faqSection,omitempty"`
}

// MarshalJSON flattens the content block back into sectionType plus foreign keys,
// which is the shape the admin UI edits.
func (s PageSection) MarshalJSON() ([]byte, error) {
	refs := s.Block.Refs()
	return json.Marshal(pageSectionJSON{
		Id:               s.Id,
		PageId:           s.PageId,
		SectionType:      s.Block.Type(),
		SortOrder:        s.SortOrder,
		IsVisible:        s.IsVisible,
		Title:            s.Title,
		Subtitle:         s.Subtitle,
		Content:          s.Content,
		HeroSectionId:    refs.HeroSectionId,
		FeatureGroupId:   refs.FeatureGroupId,
		MediaSectionId:   refs.MediaSectionId,
		PricingSectionId: refs.PricingSectionId,
		FaqSectionId:     refs.FaqSectionId,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		HeroSection:      s.HeroSection,
		FeatureGroup:     s.FeatureGroup,
		MediaSection:     s.MediaSection,
		PricingSection:   s.PricingSection,
		FaqSection:       s.FaqSection,
	})
}
