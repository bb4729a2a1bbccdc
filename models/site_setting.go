package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSetting is one key of the site-wide configuration, stored as a sparse
// key/JSON-value table. Missing keys resolve to built-in defaults at read
// time (services.LoadSettings); no key is required to exist.
type SiteSetting struct {
	ID    uint           `gorm:"primaryKey" json:"id"`
	Key   string         `gorm:"uniqueIndex;size:100" json:"key"`
	Value datatypes.JSON `json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
