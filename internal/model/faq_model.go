package model

import "time"

type FaqCategory struct {
	Id        int       `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	SortOrder int       `gorm:"not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Faqs     []Faq        `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	Sections []FaqSection `gorm:"foreignKey:CategoryId;constraint:OnDelete:SET NULL"`
}

func (FaqCategory) TableName() string {
	return "faq_categories"
}

type Faq struct {
	Id         int       `gorm:"primaryKey;autoIncrement"`
	CategoryId int       `gorm:"not null;index"`
	Question   string    `gorm:"type:text;not null"`
	Answer     string    `gorm:"type:text;not null"`
	SortOrder  int       `gorm:"not null"`
	IsActive   bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Category *FaqCategory `gorm:"foreignKey:CategoryId"`
}

func (Faq) TableName() string {
	return "faqs"
}

type FaqSection struct {
	Id         int       `gorm:"primaryKey;autoIncrement"`
	Heading    string    `gorm:"type:varchar(255);not null"`
	Subheading *string   `gorm:"type:text"`
	CategoryId *int      `gorm:"index"`
	IsActive   bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Category *FaqCategory `gorm:"foreignKey:CategoryId"`
}

func (FaqSection) TableName() string {
	return "faq_sections"
}
