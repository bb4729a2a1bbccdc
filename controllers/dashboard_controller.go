package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-site-backend/models"
	"hotel-site-backend/utils"
)

// DashboardController serves the admin landing page stats: per-table record
// counts, total and active, as head-only count queries.
type DashboardController struct {
	db *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

type resourceCount struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

func (dc *DashboardController) Stats(c *gin.Context) {
	stats := make(map[string]resourceCount, 5)

	tables := map[string]interface{}{
		"rooms":        &models.Room{},
		"facilities":   &models.Facility{},
		"services":     &models.Service{},
		"reviews":      &models.Review{},
		"footer_logos": &models.FooterLogo{},
	}

	for name, model := range tables {
		var count resourceCount
		if err := dc.db.Model(model).Count(&count.Total).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		if err := dc.db.Model(model).Where("is_active = ?", true).Count(&count.Active).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		stats[name] = count
	}

	utils.JSONSuccess(c, http.StatusOK, stats)
}
