package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

// ValidateFunc checks a decoded create payload. present reports which JSON
// keys the client actually sent, so "price": 0 and a missing price are
// distinguishable. Returns "" when valid, else the message shown inline.
type ValidateFunc[T any] func(record *T, present map[string]bool) string

// PatchValidateFunc checks a partial update body the same way.
type PatchValidateFunc func(fields map[string]interface{}) string

// DecorateFunc adds computed fields (formatted price, merged gallery) to a
// record on the public read surface.
type DecorateFunc[T any] func(record T) map[string]interface{}

// ResourceController serves one managed content table. Every admin screen
// and public section shares this implementation; the per-resource wiring
// lives in content_controllers.go.
type ResourceController[T services.Record] struct {
	svc           *services.Resource[T]
	name          string // singular, for messages
	publicOpts    services.ListOptions
	allowLimit    bool // public endpoint accepts ?limit=n
	validate      ValidateFunc[T]
	validatePatch PatchValidateFunc
	decorate      DecorateFunc[T]
}

// List returns every record, inactive ones included, in the admin order.
func (rc *ResourceController[T]) List(c *gin.Context) {
	records, err := rc.svc.List(services.ListOptions{})
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}

// ListPublic returns active records only, in the public order, decorated.
func (rc *ResourceController[T]) ListPublic(c *gin.Context) {
	opts := rc.publicOpts
	opts.ActiveOnly = true
	if rc.allowLimit {
		if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
			opts.Limit = n
		}
	}

	records, err := rc.svc.List(opts)
	if err != nil {
		rc.fail(c, err)
		return
	}

	if rc.decorate == nil {
		utils.JSONSuccess(c, http.StatusOK, records)
		return
	}

	items := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		item, err := toMap(record)
		if err != nil {
			rc.fail(c, err)
			return
		}
		for key, value := range rc.decorate(record) {
			item[key] = value
		}
		items = append(items, item)
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (rc *ResourceController[T]) Get(c *gin.Context) {
	id, ok := rc.pathID(c)
	if !ok {
		return
	}
	record, err := rc.svc.Get(id)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

func (rc *ResourceController[T]) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	present := make(map[string]bool, len(raw))
	for key := range raw {
		present[key] = true
	}

	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Validation is local and synchronous; nothing reaches the database
	// until it passes.
	if rc.validate != nil {
		if msg := rc.validate(&record, present); msg != "" {
			utils.JSONError(c, http.StatusBadRequest, msg)
			return
		}
	}

	if err := rc.svc.Create(&record); err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, record)
}

func (rc *ResourceController[T]) Update(c *gin.Context) {
	id, ok := rc.pathID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if rc.validatePatch != nil {
		if msg := rc.validatePatch(fields); msg != "" {
			utils.JSONError(c, http.StatusBadRequest, msg)
			return
		}
	}

	record, err := rc.svc.Patch(id, fields)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

func (rc *ResourceController[T]) Delete(c *gin.Context) {
	id, ok := rc.pathID(c)
	if !ok {
		return
	}
	if err := rc.svc.Delete(id); err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": fmt.Sprintf("%s deleted", rc.name)})
}

func (rc *ResourceController[T]) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// fail maps service errors onto status codes; the backend message is passed
// through verbatim rather than masked.
func (rc *ResourceController[T]) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("%s not found", rc.name))
	case isDuplicate(err):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

func isDuplicate(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

func toMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	err = json.Unmarshal(data, &m)
	return m, err
}
