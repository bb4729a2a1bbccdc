package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-site-backend/middleware"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type ProfileController struct {
	auth    *services.AuthService
	uploads *services.UploadService
}

func NewProfileController(auth *services.AuthService, uploads *services.UploadService) *ProfileController {
	return &ProfileController{auth: auth, uploads: uploads}
}

func (pc *ProfileController) Get(c *gin.Context) {
	account, err := pc.auth.GetAccount(middleware.SessionUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, account)
}

type profilePayload struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

func (pc *ProfileController) Update(c *gin.Context) {
	var payload profilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	account, err := pc.auth.UpdateProfile(middleware.SessionUserID(c), payload.FullName, payload.AvatarURL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, account)
}

// UploadAvatar stores a new avatar, points the profile at it and removes
// the previous object. A failed removal only logs: the profile already
// references the new image.
func (pc *ProfileController) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A file is required")
		return
	}

	userID := middleware.SessionUserID(c)
	previous, err := pc.auth.GetAccount(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found")
		return
	}

	url, err := pc.uploads.Upload(fh, "avatars")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := pc.auth.UpdateProfile(userID, nil, &url)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if previous.AvatarURL != nil && *previous.AvatarURL != url {
		if err := pc.uploads.Remove(*previous.AvatarURL); err != nil {
			logrus.WithError(err).Warn("failed to remove previous avatar")
		}
	}

	utils.JSONSuccess(c, http.StatusOK, account)
}
