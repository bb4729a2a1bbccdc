package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a guest testimonial. Public ordering is featured first, then
// newest first; the public preview is capped (default 6).
type Review struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	GuestName   string  `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestAvatar *string `gorm:"column:guest_avatar;size:500" json:"guest_avatar"`
	Rating      int     `json:"rating"` // 1..5
	Comment     *string `gorm:"type:text" json:"comment"`
	IsFeatured  bool    `gorm:"column:is_featured" json:"is_featured"`
	IsActive    bool    `gorm:"column:is_active" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
