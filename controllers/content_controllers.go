package controllers

import (
	"strings"

	"gorm.io/gorm"

	"hotel-site-backend/models"
	"hotel-site-backend/realtime"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

// Per-resource wiring for the shared ResourceController: table, ordering,
// required fields and public decoration. sort_order ties always break on id
// so the display sequence is stable across refetches.
const sortOrderAsc = "sort_order ASC, id ASC"

func NewRoomController(db *gorm.DB, hub realtime.Notifier) *ResourceController[models.Room] {
	return &ResourceController[models.Room]{
		svc:        services.NewResource[models.Room](db, "rooms", sortOrderAsc, hub),
		name:       "room",
		publicOpts: services.ListOptions{OrderBy: sortOrderAsc},
		validate: func(room *models.Room, present map[string]bool) string {
			if !present["is_active"] {
				room.IsActive = true
			}
			room.Name = strings.TrimSpace(room.Name)
			if room.Name == "" {
				return "Name is required"
			}
			if !present["price"] {
				return "Price is required"
			}
			if room.Price < 0 {
				return "Price must be zero or greater"
			}
			return ""
		},
		validatePatch: func(fields map[string]interface{}) string {
			if msg := patchRequireString(fields, "name", "Name is required"); msg != "" {
				return msg
			}
			if raw, ok := fields["price"]; ok {
				price, ok := raw.(float64)
				if !ok || price < 0 {
					return "Price must be zero or greater"
				}
			}
			return ""
		},
		decorate: func(room models.Room) map[string]interface{} {
			return map[string]interface{}{
				"price_display": utils.FormatRoomPrice(room.Price),
				"gallery":       utils.MergeGallery(room.ImageURL, room.Images),
			}
		},
	}
}

func NewFacilityController(db *gorm.DB, hub realtime.Notifier) *ResourceController[models.Facility] {
	return &ResourceController[models.Facility]{
		svc:        services.NewResource[models.Facility](db, "facilities", sortOrderAsc, hub),
		name:       "facility",
		publicOpts: services.ListOptions{OrderBy: sortOrderAsc},
		validate: func(facility *models.Facility, present map[string]bool) string {
			if !present["is_active"] {
				facility.IsActive = true
			}
			facility.Name = strings.TrimSpace(facility.Name)
			if facility.Name == "" {
				return "Name is required"
			}
			if facility.Price != nil && *facility.Price < 0 {
				return "Price must be zero or greater"
			}
			return ""
		},
		validatePatch: func(fields map[string]interface{}) string {
			return patchRequireString(fields, "name", "Name is required")
		},
		decorate: func(facility models.Facility) map[string]interface{} {
			return map[string]interface{}{
				"price_display": utils.FormatFacilityPrice(facility.Price),
				"gallery":       utils.MergeGallery(facility.ImageURL, facility.Images),
			}
		},
	}
}

func NewServiceController(db *gorm.DB, hub realtime.Notifier) *ResourceController[models.Service] {
	return &ResourceController[models.Service]{
		svc:        services.NewResource[models.Service](db, "services", sortOrderAsc, hub),
		name:       "service",
		publicOpts: services.ListOptions{OrderBy: sortOrderAsc},
		validate: func(service *models.Service, present map[string]bool) string {
			if !present["is_active"] {
				service.IsActive = true
			}
			service.Title = strings.TrimSpace(service.Title)
			if service.Title == "" {
				return "Title is required"
			}
			return ""
		},
		validatePatch: func(fields map[string]interface{}) string {
			return patchRequireString(fields, "title", "Title is required")
		},
		decorate: func(service models.Service) map[string]interface{} {
			if service.Price == nil {
				return nil
			}
			return map[string]interface{}{"price_display": utils.FormatIDR(*service.Price)}
		},
	}
}

func NewReviewController(db *gorm.DB, hub realtime.Notifier) *ResourceController[models.Review] {
	return &ResourceController[models.Review]{
		svc:  services.NewResource[models.Review](db, "reviews", "created_at DESC, id DESC", hub),
		name: "review",
		// Featured first, then newest; the public section previews six.
		publicOpts: services.ListOptions{OrderBy: "is_featured DESC, created_at DESC, id DESC", Limit: 6},
		allowLimit: true,
		validate: func(review *models.Review, present map[string]bool) string {
			if !present["is_active"] {
				review.IsActive = true
			}
			review.GuestName = strings.TrimSpace(review.GuestName)
			if review.GuestName == "" {
				return "Guest name is required"
			}
			if !present["rating"] || review.Rating < 1 || review.Rating > 5 {
				return "Rating must be between 1 and 5"
			}
			return ""
		},
		validatePatch: func(fields map[string]interface{}) string {
			if msg := patchRequireString(fields, "guest_name", "Guest name is required"); msg != "" {
				return msg
			}
			if raw, ok := fields["rating"]; ok {
				rating, ok := raw.(float64)
				if !ok || rating < 1 || rating > 5 {
					return "Rating must be between 1 and 5"
				}
			}
			return ""
		},
	}
}

func NewFooterLogoController(db *gorm.DB, hub realtime.Notifier) *ResourceController[models.FooterLogo] {
	return &ResourceController[models.FooterLogo]{
		svc:        services.NewResource[models.FooterLogo](db, "footer_logos", sortOrderAsc, hub),
		name:       "footer logo",
		publicOpts: services.ListOptions{OrderBy: sortOrderAsc},
		validate: func(logo *models.FooterLogo, present map[string]bool) string {
			if !present["is_active"] {
				logo.IsActive = true
			}
			if strings.TrimSpace(logo.ImageURL) == "" {
				return "An uploaded image is required"
			}
			return ""
		},
		validatePatch: func(fields map[string]interface{}) string {
			return patchRequireString(fields, "image_url", "An uploaded image is required")
		},
	}
}

// patchRequireString rejects a partial update that would blank a required
// field; an absent key is fine.
func patchRequireString(fields map[string]interface{}, key, msg string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return msg
	}
	return ""
}
