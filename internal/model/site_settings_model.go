package model

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettings holds a single row.
type SiteSettings struct {
	Id                   int                                   `gorm:"primaryKey;autoIncrement"`
	SiteName             string                                `gorm:"type:varchar(255)"`
	SiteUrl              string                                `gorm:"type:varchar(1024)"`
	LogoUrl              *string                               `gorm:"type:varchar(1024)"`
	FooterText           *string                               `gorm:"type:text"`
	Copyright            *string                               `gorm:"type:varchar(255)"`
	SocialLinks          datatypes.JSONType[map[string]string] `gorm:"not null"`
	SmtpHost             string                                `gorm:"type:varchar(255)"`
	SmtpPort             int
	SmtpUser             string                                `gorm:"type:varchar(255)"`
	SmtpPassword         string                                `gorm:"type:varchar(255)"`
	SmtpSecure           bool                                  `gorm:"not null"`
	SmtpFromEmail        string                                `gorm:"type:varchar(255)"`
	SmtpFromName         string                                `gorm:"type:varchar(255)"`
	NotificationEmail    string                                `gorm:"type:varchar(255)"`
	EmailSubjectTemplate string                                `gorm:"type:text"`
	EmailBodyTemplate    string                                `gorm:"type:text"`
	DesignTokens         datatypes.JSONType[map[string]string] `gorm:"not null"`
	CreatedAt            time.Time                             `gorm:"autoCreateTime"`
	UpdatedAt            time.Time                             `gorm:"autoUpdateTime"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

type FormSubmission struct {
	Id           int            `gorm:"primaryKey;autoIncrement"`
	FormName     string         `gorm:"type:varchar(255);not null;index"`
	FormData     datatypes.JSON `gorm:"not null"`
	EmailStatus  string         `gorm:"type:varchar(32);not null;index"`
	EmailDetails datatypes.JSON
	IpAddress    *string   `gorm:"type:varchar(64)"`
	UserAgent    *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}
