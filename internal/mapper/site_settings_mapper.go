package mapper

import (
	"encoding/json"

	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"

	"gorm.io/datatypes"
)

type SiteSettingsMapper struct{}

func NewSiteSettingsMapper() *SiteSettingsMapper {
	return &SiteSettingsMapper{}
}

func (m *SiteSettingsMapper) ToEntity(s *model.SiteSettings) *entity.SiteSettings {
	if s == nil {
		return nil
	}
	return &entity.SiteSettings{
		Id:                   s.Id,
		SiteName:             s.SiteName,
		SiteUrl:              s.SiteUrl,
		LogoUrl:              s.LogoUrl,
		FooterText:           s.FooterText,
		Copyright:            s.Copyright,
		SocialLinks:          nonNilMap(s.SocialLinks.Data()),
		SmtpHost:             s.SmtpHost,
		SmtpPort:             s.SmtpPort,
		SmtpUser:             s.SmtpUser,
		SmtpPassword:         s.SmtpPassword,
		SmtpSecure:           s.SmtpSecure,
		SmtpFromEmail:        s.SmtpFromEmail,
		SmtpFromName:         s.SmtpFromName,
		NotificationEmail:    s.NotificationEmail,
		EmailSubjectTemplate: s.EmailSubjectTemplate,
		EmailBodyTemplate:    s.EmailBodyTemplate,
		DesignTokens:         nonNilMap(s.DesignTokens.Data()),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *SiteSettingsMapper) ToModel(s *entity.SiteSettings) *model.SiteSettings {
	if s == nil {
		return nil
	}
	return &model.SiteSettings{
		Id:                   s.Id,
		SiteName:             s.SiteName,
		SiteUrl:              s.SiteUrl,
		LogoUrl:              s.LogoUrl,
		FooterText:           s.FooterText,
		Copyright:            s.Copyright,
		SocialLinks:          datatypes.NewJSONType(nonNilMap(s.SocialLinks)),
		SmtpHost:             s.SmtpHost,
		SmtpPort:             s.SmtpPort,
		SmtpUser:             s.SmtpUser,
		SmtpPassword:         s.SmtpPassword,
		SmtpSecure:           s.SmtpSecure,
		SmtpFromEmail:        s.SmtpFromEmail,
		SmtpFromName:         s.SmtpFromName,
		NotificationEmail:    s.NotificationEmail,
		EmailSubjectTemplate: s.EmailSubjectTemplate,
		EmailBodyTemplate:    s.EmailBodyTemplate,
		DesignTokens:         datatypes.NewJSONType(nonNilMap(s.DesignTokens)),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func nonNilMap(in map[string]string) map[string]string {
	if in == nil {
		return map[string]string{}
	}
	return in
}

type FormSubmissionMapper struct{}

func NewFormSubmissionMapper() *FormSubmissionMapper {
	return &FormSubmissionMapper{}
}

func (m *FormSubmissionMapper) ToEntity(f *model.FormSubmission) *entity.FormSubmission {
	if f == nil {
		return nil
	}
	var details *entity.EmailDetails
	if len(f.EmailDetails) > 0 && string(f.EmailDetails) != "null" {
		details = &entity.EmailDetails{}
		if err := json.Unmarshal(f.EmailDetails, details); err != nil {
			details = nil
		}
	}
	return &entity.FormSubmission{
		Id:           f.Id,
		FormName:     f.FormName,
		FormData:     json.RawMessage(f.FormData),
		EmailStatus:  entity.EmailStatus(f.EmailStatus),
		EmailDetails: details,
		IpAddress:    f.IpAddress,
		UserAgent:    f.UserAgent,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func (m *FormSubmissionMapper) ToModel(f *entity.FormSubmission) *model.FormSubmission {
	if f == nil {
		return nil
	}
	out := &model.FormSubmission{
		Id:          f.Id,
		FormName:    f.FormName,
		FormData:    datatypes.JSON(f.FormData),
		EmailStatus: string(f.EmailStatus),
		IpAddress:   f.IpAddress,
		UserAgent:   f.UserAgent,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	if f.EmailDetails != nil {
		if raw, err := json.Marshal(f.EmailDetails); err == nil {
			out.EmailDetails = datatypes.JSON(raw)
		}
	}
	return out
}
