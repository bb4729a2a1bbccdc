package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type SettingsController struct {
	svc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{svc: svc}
}

// Get returns the merged settings object. Public: the site shell renders
// from it before anyone signs in.
func (sc *SettingsController) Get(c *gin.Context) {
	settings, err := sc.svc.Load()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}

// Update upserts the submitted keys and responds with the re-merged object.
func (sc *SettingsController) Update(c *gin.Context) {
	var values map[string]json.RawMessage
	if err := c.ShouldBindJSON(&values); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := sc.svc.Update(values); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	settings, err := sc.svc.Load()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}
