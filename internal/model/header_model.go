package model

import "time"

type HeaderConfig struct {
	Id              int       `gorm:"primaryKey;autoIncrement"`
	IsActive        bool      `gorm:"not null;index"`
	BackgroundColor string    `gorm:"type:varchar(64)"`
	TextColor       string    `gorm:"type:varchar(64)"`
	HoverColor      string    `gorm:"type:varchar(64)"`
	ActiveColor     string    `gorm:"type:varchar(64)"`
	LogoUrl         *string   `gorm:"type:varchar(1024)"`
	IsSticky        bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	NavItems   []HeaderNavItem    `gorm:"foreignKey:HeaderConfigId;constraint:OnDelete:CASCADE"`
	HeaderCTAs []HeaderCTA        `gorm:"foreignKey:HeaderConfigId;constraint:OnDelete:CASCADE"`
	Menus      []HeaderConfigMenu `gorm:"foreignKey:HeaderConfigId;constraint:OnDelete:CASCADE"`
}

func (HeaderConfig) TableName() string {
	return "header_configs"
}

type HeaderNavItem struct {
	Id             int       `gorm:"primaryKey;autoIncrement"`
	HeaderConfigId int       `gorm:"not null;index"`
	PageId         *int      `gorm:"index"`
	CustomText     *string   `gorm:"type:varchar(255)"`
	CustomUrl      *string   `gorm:"type:varchar(1024)"`
	SortOrder      int       `gorm:"not null"`
	IsVisible      bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Page *Page `gorm:"foreignKey:PageId"`
}

func (HeaderNavItem) TableName() string {
	return "header_nav_items"
}

type HeaderCTA struct {
	Id             int       `gorm:"primaryKey;autoIncrement"`
	HeaderConfigId int       `gorm:"not null;uniqueIndex:idx_header_ctas_pair"`
	CtaId          int       `gorm:"not null;uniqueIndex:idx_header_ctas_pair;index"`
	SortOrder      int       `gorm:"not null"`
	IsVisible      bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Cta *CTA `gorm:"foreignKey:CtaId"`
}

func (HeaderCTA) TableName() string {
	return "header_ctas"
}

type HeaderConfigMenu struct {
	Id             int       `gorm:"primaryKey;autoIncrement"`
	HeaderConfigId int       `gorm:"not null;index"`
	MenuId         int       `gorm:"not null;index"`
	SortOrder      int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Menu *Menu `gorm:"foreignKey:MenuId"`
}

func (HeaderConfigMenu) TableName() string {
	return "header_config_menus"
}

type Menu struct {
	Id        int       `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Items       []MenuItem         `gorm:"foreignKey:MenuId;constraint:OnDelete:CASCADE"`
	HeaderLinks []HeaderConfigMenu `gorm:"foreignKey:MenuId;constraint:OnDelete:CASCADE"`
}

func (Menu) TableName() string {
	return "menus"
}

type MenuItem struct {
	Id        int       `gorm:"primaryKey;autoIncrement"`
	MenuId    int       `gorm:"not null;index"`
	ParentId  *int      `gorm:"index"`
	Label     string    `gorm:"type:varchar(255);not null"`
	Url       string    `gorm:"type:varchar(1024);not null"`
	Target    string    `gorm:"type:varchar(16);not null"`
	Icon      *string   `gorm:"type:varchar(255)"`
	SortOrder int       `gorm:"not null"`
	IsVisible bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Children []MenuItem `gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
