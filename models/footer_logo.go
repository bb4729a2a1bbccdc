package models

import (
	"time"

	"gorm.io/gorm"
)

// FooterLogo is a partner/OTA logo shown in the site footer.
type FooterLogo struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:255" json:"name"`
	ImageURL  string  `gorm:"column:image_url;size:500" json:"image_url"`
	LinkURL   *string `gorm:"column:link_url;size:500" json:"link_url"`
	IsActive  bool    `gorm:"column:is_active" json:"is_active"`
	SortOrder int     `gorm:"column:sort_order" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
