package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is a sellable room category shown on the public site, not a physical
// room inventory. Public ordering follows SortOrder ascending, ID as tie-break.
type Room struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `gorm:"column:image_url;size:500" json:"image_url"`

	// First entry of the rendered gallery is always ImageURL when present.
	Images   datatypes.JSONSlice[string] `json:"images"`
	Features datatypes.JSONSlice[string] `json:"features"`

	Capacity  *string `gorm:"size:100" json:"capacity"`
	RoomSize  *string `gorm:"column:room_size;size:100" json:"room_size"`
	BedType   *string `gorm:"column:bed_type;size:100" json:"bed_type"`
	IsActive  bool    `gorm:"column:is_active" json:"is_active"`
	SortOrder int     `gorm:"column:sort_order" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
