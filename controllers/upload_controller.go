package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type UploadController struct {
	uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{uploads: uploads}
}

// Upload handles the single-image forms: one "file" part plus a "folder"
// form value (rooms, facilities, logos, hero).
func (uc *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A file is required")
		return
	}

	url, err := uc.uploads.Upload(fh, c.PostForm("folder"))
	if err != nil {
		if err == services.ErrNotImage || err == services.ErrTooLarge {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"url": url})
}

// UploadBatch handles the gallery forms. "remaining" is how many slots the
// client's draft gallery still has; extra files are silently truncated and
// per-file rejections are reported by name without failing the batch.
func (uc *UploadController) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "At least one file is required")
		return
	}

	remaining := services.MaxGalleryImages
	if raw := c.PostForm("remaining"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid remaining slot count")
			return
		}
		remaining = n
	}

	urls, rejected := uc.uploads.UploadMany(files, c.PostForm("folder"), remaining)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"urls":     urls,
		"rejected": rejected,
	})
}
