package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Facility is an on-site amenity (pool, meeting room, restaurant). Price is
// nullable; an absent price renders as free on the public site.
type Facility struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	ImageURL    *string `gorm:"column:image_url;size:500" json:"image_url"`

	Images   datatypes.JSONSlice[string] `json:"images"`
	Features datatypes.JSONSlice[string] `json:"features"`

	OperatingHours *string  `gorm:"column:operating_hours;size:100" json:"operating_hours"`
	Capacity       *string  `gorm:"size:100" json:"capacity"`
	Price          *float64 `json:"price"`
	IsActive       bool     `gorm:"column:is_active" json:"is_active"`
	SortOrder      int      `gorm:"column:sort_order" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
