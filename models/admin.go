package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is an account that can sign in to the panel. Profile fields
// (full_name, avatar_url) live on the same row. IsAdmin gates the admin
// routes: a signed-up account without it can authenticate but not manage
// content.
type Admin struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Email     string  `gorm:"uniqueIndex;size:150" json:"email"`
	Password  string  `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	FullName  *string `gorm:"column:full_name;size:255" json:"full_name"`
	AvatarURL *string `gorm:"column:avatar_url;size:500" json:"avatar_url"`
	IsAdmin   bool    `gorm:"column:is_admin" json:"is_admin"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
