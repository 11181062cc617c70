package entity

import "time"

type CTAStyle string

const (
	CTAStylePrimary   CTAStyle = "primary"
	CTAStyleSecondary CTAStyle = "secondary"
	CTAStyleOutline   CTAStyle = "outline"
	CTAStyleGhost     CTAStyle = "ghost"
	CTAStyleLink      CTAStyle = "link"
	CTAStyleGradient  CTAStyle = "gradient"
)

// CTA is a call-to-action button reused by hero sections and the header.
type CTA struct {
	Id        int       `json:"id"`
	Text      string    `json:"text"`
	Url       string    `json:"url"`
	Icon      *string   `json:"icon"`
	Style     CTAStyle  `json:"style"`
	Target    string    `json:"target"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HeroSection is the large banner block at the top of a page.
type HeroSection struct {
	Id                  int       `json:"id"`
	Name                string    `json:"name"`
	LayoutType          string    `json:"layoutType"`
	Tagline             *string   `json:"tagline"`
	Headline            string    `json:"headline"`
	Subheading          *string   `json:"subheading"`
	TaglineColor        *string   `json:"taglineColor"`
	HeadlineColor       *string   `json:"headlineColor"`
	SubheadingColor     *string   `json:"subheadingColor"`
	CtaPrimaryId        *int      `json:"ctaPrimaryId"`
	CtaSecondaryId      *int      `json:"ctaSecondaryId"`
	BackgroundType      string    `json:"backgroundType"`
	BackgroundValue     *string   `json:"backgroundValue"`
	MediaType           string    `json:"mediaType"`
	MediaUrl            *string   `json:"mediaUrl"`
	MediaAlt            *string   `json:"mediaAlt"`
	PaddingTop          string    `json:"paddingTop"`
	PaddingBottom       string    `json:"paddingBottom"`
	ContainerMaxWidth   string    `json:"containerMaxWidth"`
	ShowTypingEffect    bool      `json:"showTypingEffect"`
	ShowBackgroundGrid  bool      `json:"showBackgroundGrid"`
	ShowScrollIndicator bool      `json:"showScrollIndicator"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
	CtaPrimary          *CTA      `json:"ctaPrimary,omitempty"`
	CtaSecondary        *CTA      `json:"ctaSecondary,omitempty"`
}

// MediaSection is a headline plus image/video with a row of feature chips.
type MediaSection struct {
	Id         int                    `json:"id"`
	Headline   string                 `json:"headline"`
	Subheading *string                `json:"subheading"`
	MediaType  string                 `json:"mediaType"`
	MediaUrl   string                 `json:"mediaUrl"`
	MediaAlt   *string                `json:"mediaAlt"`
	LayoutType string                 `json:"layoutType"`
	BadgeText  *string                `json:"badgeText"`
	IsActive   bool                   `json:"isActive"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
	Features   []*MediaSectionFeature `json:"features"`
}

// MediaSectionFeature is one icon + label chip under a media section.
type MediaSectionFeature struct {
	Id             int       `json:"id"`
	MediaSectionId int       `json:"mediaSectionId"`
	Icon           string    `json:"icon"`
	Label          string    `json:"label"`
	Color          string    `json:"color"`
	SortOrder      int       `json:"sortOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PricingSection groups pricing plans for a page.
type PricingSection struct {
	Id         int            `json:"id"`
	Heading    string         `json:"heading"`
	Subheading *string        `json:"subheading"`
	IsActive   bool           `json:"isActive"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Plans      []*PricingPlan `json:"plans"`
}

type PricingPlan struct {
	Id               int       `json:"id"`
	PricingSectionId int       `json:"pricingSectionId"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	Price            string    `json:"price"`
	BillingPeriod    string    `json:"billingPeriod"`
	Features         []string  `json:"features"`
	CtaText          string    `json:"ctaText"`
	CtaUrl           string    `json:"ctaUrl"`
	IsPopular        bool      `json:"isPopular"`
	SortOrder        int       `json:"sortOrder"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
