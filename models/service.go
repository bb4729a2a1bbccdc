package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is an extra guest service (laundry, airport transfer). Icon is a
// free-text symbolic name resolved to a glyph on the client; unknown names
// fall back to a default glyph there, so it is not validated here.
type Service struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"size:255" json:"title"`
	Description *string  `gorm:"type:text" json:"description"`
	Icon        *string  `gorm:"size:100" json:"icon"`
	Price       *float64 `json:"price"`
	IsActive    bool     `gorm:"column:is_active" json:"is_active"`
	SortOrder   int      `gorm:"column:sort_order" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
