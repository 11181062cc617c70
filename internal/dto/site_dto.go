package dto

import (
	"encoding/json"
	"time"

	"sitebuilder-be/internal/entity"
	"sitebuilder-be/pkg/seo"
)

type SeoMetadata = seo.Metadata

// UpdateSiteSettingsRequest writes only present keys. smtpPassword "" clears the stored password.
type UpdateSiteSettingsRequest struct {
	SiteName             *string            `json:"siteName" validate:"omitempty,max=255"`
	SiteUrl              *string            `json:"siteUrl" validate:"omitempty,max=1024"`
	LogoUrl              *string            `json:"logoUrl" validate:"omitempty,max=1024"`
	FooterText           *string            `json:"footerText"`
	Copyright            *string            `json:"copyright" validate:"omitempty,max=255"`
	SocialLinks          *map[string]string `json:"socialLinks"`
	SmtpHost             *string            `json:"smtpHost" validate:"omitempty,max=255"`
	SmtpPort             *int               `json:"smtpPort" validate:"omitempty,gte=0,lte=65535"`
	SmtpUser             *string            `json:"smtpUser" validate:"omitempty,max=255"`
	SmtpPassword         *string            `json:"smtpPassword" validate:"omitempty,max=255"`
	SmtpSecure           *bool              `json:"smtpSecure"`
	SmtpFromEmail        *string            `json:"smtpFromEmail" validate:"omitempty,email"`
	SmtpFromName         *string            `json:"smtpFromName" validate:"omitempty,max=255"`
	NotificationEmail    *string            `json:"notificationEmail" validate:"omitempty,email"`
	EmailSubjectTemplate *string            `json:"emailSubjectTemplate"`
	EmailBodyTemplate    *string            `json:"emailBodyTemplate"`
	DesignTokens         *map[string]string `json:"designTokens"`
}

// SiteSettingsResponse never carries the SMTP password, only whether one is stored.
type SiteSettingsResponse struct {
	*entity.SiteSettings
	SmtpPasswordSet bool `json:"smtpPasswordSet"`
}

type TestEmailRequest struct {
	To string `json:"to" validate:"required,email"`
}

type TestEmailResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

type SubmitFormRequest struct {
	FormName string          `json:"formName" validate:"required,max=255"`
	FormData json.RawMessage `json:"formData" validate:"required"`
}

type SubmitFormResponse struct {
	Id          int                `json:"id"`
	EmailStatus entity.EmailStatus `json:"emailStatus"`
}

// FormSubmissionFilter narrows list and export queries. Zero values are ignored.
type FormSubmissionFilter struct {
	Status   string
	FormName string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type FormSubmissionListResponse struct {
	Items []*entity.FormSubmission `json:"items"`
	Total int64                    `json:"total"`
}

// CatalogItem is one pickable content block in the page builder.
type CatalogItem struct {
	Id          int                    `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Meta        map[string]interface{} `json:"meta"`
}

type PageLink struct {
	Id    int    `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Href  string `json:"href"`
}

type NavLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	PageId *int   `json:"pageId,omitempty"`
}

type PublicHeader struct {
	BackgroundColor string         `json:"backgroundColor"`
	TextColor       string         `json:"textColor"`
	HoverColor      string         `json:"hoverColor"`
	ActiveColor     string         `json:"activeColor"`
	LogoUrl         *string        `json:"logoUrl"`
	IsSticky        bool           `json:"isSticky"`
	NavItems        []*NavLink     `json:"navItems"`
	CTAs            []*entity.CTA  `json:"ctas"`
	Menus           []*entity.Menu `json:"menus"`
}

type PublicFooter struct {
	FooterText  *string           `json:"footerText"`
	Copyright   *string           `json:"copyright"`
	SocialLinks map[string]string `json:"socialLinks"`
	Pages       []*PageLink       `json:"pages"`
}

type PublicSiteResponse struct {
	SiteName string        `json:"siteName"`
	SiteUrl  string        `json:"siteUrl"`
	LogoUrl  *string       `json:"logoUrl"`
	Header   *PublicHeader `json:"header"`
	Footer   *PublicFooter `json:"footer"`
}

type PublicPageResponse struct {
	Page     *entity.Page          `json:"page"`
	Sections []*entity.PageSection `json:"sections"`
	Seo      *SeoMetadata          `json:"seo"`
}
