package services

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-site-backend/models"
	"hotel-site-backend/realtime"
)

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Youtube   string `json:"youtube"`
	Tiktok    string `json:"tiktok"`
}

type HeroStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SiteSettings is the fully-populated site configuration. Every field has a
// built-in default; storage only ever overrides, never removes.
type SiteSettings struct {
	HotelName           string      `json:"hotel_name"`
	Tagline             string      `json:"tagline"`
	Description         string      `json:"description"`
	Phone               string      `json:"phone"`
	Whatsapp            string      `json:"whatsapp"`
	Email               string      `json:"email"`
	Address             string      `json:"address"`
	GoogleMapsURL       string      `json:"google_maps_url"`
	StarRating          string      `json:"star_rating"`
	CheckInTime         string      `json:"check_in_time"`
	CheckOutTime        string      `json:"check_out_time"`
	HeroImageURL        string      `json:"hero_image_url"`
	HeroVideoURL        string      `json:"hero_video_url"`
	HeroRightImageTop   string      `json:"hero_right_image_top"`
	HeroRightImageBottom string     `json:"hero_right_image_bottom"`
	HeroStats           []HeroStat  `json:"hero_stats"`
	LogoURL             string      `json:"logo_url"`
	SocialMedia         SocialMedia `json:"social_media"`
}

// DefaultSettings returns the hardcoded baseline every load starts from.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		HotelName:    "Hotel Grand Master Purwodadi",
		Tagline:      "Pengalaman Menginap Tak Terlupakan",
		Description:  "Nikmati kemewahan dan kenyamanan di jantung kota Purwodadi. Hotel Grand Master menawarkan layanan premium dengan sentuhan keramahan Jawa yang hangat.",
		Phone:        "(0292) 4273335",
		Whatsapp:     "+628112769959",
		Email:        "info@grandmasterpurwodadi.com",
		Address:      "Jl. Gajah Mada No.10, Majenang, Kuripan, Kec. Purwodadi, Kabupaten Grobogan, Jawa Tengah, 58112",
		StarRating:   "Hotel Bintang 3",
		CheckInTime:  "14:00 WIB",
		CheckOutTime: "12:00 WIB",
		HeroStats: []HeroStat{
			{Value: "50+", Label: "Kamar Nyaman"},
			{Value: "4.5", Label: "Rating Tamu"},
			{Value: "10+", Label: "Tahun Melayani"},
		},
	}
}

const settingsTable = "site_settings"

type SettingsService struct {
	db  *gorm.DB
	hub realtime.Notifier
}

func NewSettingsService(db *gorm.DB, hub realtime.Notifier) *SettingsService {
	return &SettingsService{db: db, hub: hub}
}

// Load folds the sparse key/value rows over DefaultSettings. A missing or
// unparsable key falls back to its default; unknown keys are ignored. The
// composite fields (social_media, hero_stats) merge partial payloads instead
// of replacing the default shape.
func (s *SettingsService) Load() (SiteSettings, error) {
	settings := DefaultSettings()

	var rows []models.SiteSetting
	if err := s.db.Find(&rows).Error; err != nil {
		return settings, err
	}

	values := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		if len(row.Value) > 0 {
			values[row.Key] = json.RawMessage(row.Value)
		}
	}

	settings.HotelName = stringValue(values, "hotel_name", settings.HotelName)
	settings.Tagline = stringValue(values, "tagline", settings.Tagline)
	settings.Description = stringValue(values, "description", settings.Description)
	settings.Phone = stringValue(values, "phone", settings.Phone)
	settings.Whatsapp = stringValue(values, "whatsapp", settings.Whatsapp)
	settings.Email = stringValue(values, "email", settings.Email)
	settings.Address = stringValue(values, "address", settings.Address)
	settings.GoogleMapsURL = stringValue(values, "google_maps_url", settings.GoogleMapsURL)
	settings.StarRating = stringValue(values, "star_rating", settings.StarRating)
	settings.CheckInTime = stringValue(values, "check_in_time", settings.CheckInTime)
	settings.CheckOutTime = stringValue(values, "check_out_time", settings.CheckOutTime)
	settings.HeroImageURL = stringValue(values, "hero_image_url", settings.HeroImageURL)
	settings.HeroVideoURL = stringValue(values, "hero_video_url", settings.HeroVideoURL)
	settings.HeroRightImageTop = stringValue(values, "hero_right_image_top", settings.HeroRightImageTop)
	settings.HeroRightImageBottom = stringValue(values, "hero_right_image_bottom", settings.HeroRightImageBottom)
	settings.LogoURL = stringValue(values, "logo_url", settings.LogoURL)

	if raw, ok := values["hero_stats"]; ok {
		var stats []HeroStat
		if err := json.Unmarshal(raw, &stats); err == nil && stats != nil {
			settings.HeroStats = stats
		}
	}

	if raw, ok := values["social_media"]; ok {
		// Unmarshal over the default struct: keys absent from storage keep
		// their default, so a partial object never blanks out the others.
		merged := settings.SocialMedia
		if err := json.Unmarshal(raw, &merged); err == nil {
			settings.SocialMedia = merged
		}
	}

	return settings, nil
}

// Update upserts the submitted keys and leaves every other key alone.
func (s *SettingsService) Update(values map[string]json.RawMessage) error {
	if len(values) == 0 {
		return nil
	}

	rows := make([]models.SiteSetting, 0, len(values))
	for key, raw := range values {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		rows = append(rows, models.SiteSetting{Key: key, Value: datatypes.JSON(raw)})
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Notify(settingsTable, realtime.ActionUpdate, 0)
	}
	return nil
}

// stringValue resolves one scalar key: JSON string when it parses as one,
// the raw value text otherwise, the default when absent.
func stringValue(values map[string]json.RawMessage, key, def string) string {
	raw, ok := values[key]
	if !ok {
		return def
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return strings.Trim(string(raw), `"`)
}
