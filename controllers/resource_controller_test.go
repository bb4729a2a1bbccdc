package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-site-backend/models"
)

func setupContentAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:controllers_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Review{}))

	rooms := NewRoomController(db, nil)
	reviews := NewReviewController(db, nil)

	r := gin.New()
	r.GET("/api/public/rooms", rooms.ListPublic)
	r.GET("/api/public/reviews", reviews.ListPublic)
	admin := r.Group("/api/admin")
	{
		admin.GET("/rooms", rooms.List)
		admin.POST("/rooms", rooms.Create)
		admin.PATCH("/rooms/:id", rooms.Update)
		admin.DELETE("/rooms/:id", rooms.Delete)
		admin.POST("/reviews", reviews.Create)
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope["data"]
}

func TestCreateRoomMissingPriceIsRejectedBeforeAnyWrite(t *testing.T) {
	r, db := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{"name": "Deluxe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Price is required")

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateRoomMissingNameIsRejected(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{"name": "  ", "price": 500000})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name is required")
}

func TestCreateRoomNegativePriceIsRejected(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{"name": "Deluxe", "price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomDefaultsToActive(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{"name": "Deluxe", "price": 500000})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w).(map[string]interface{})
	assert.Equal(t, true, data["is_active"])

	public := doJSON(t, r, http.MethodGet, "/api/public/rooms", nil)
	items := decodeData(t, public).([]interface{})
	require.Len(t, items, 1)
}

func TestPublicRoomsDecoratedAndFilterInactive(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{
		"name":      "Deluxe",
		"price":     500000,
		"image_url": "a.jpg",
		"images":    []string{"a.jpg", "b.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{
		"name": "Hidden", "price": 100000, "is_active": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	public := doJSON(t, r, http.MethodGet, "/api/public/rooms", nil)
	require.Equal(t, http.StatusOK, public.Code)
	items := decodeData(t, public).([]interface{})
	require.Len(t, items, 1)

	item := items[0].(map[string]interface{})
	assert.Equal(t, "Deluxe", item["name"])
	assert.Equal(t, "Rp500.000/malam", item["price_display"])
	assert.Equal(t, []interface{}{"a.jpg", "b.jpg"}, item["gallery"])

	// The admin list still shows the inactive record.
	admin := doJSON(t, r, http.MethodGet, "/api/admin/rooms", nil)
	assert.Len(t, decodeData(t, admin).([]interface{}), 2)
}

func TestPatchRoomBlankNameRejected(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{"name": "Deluxe", "price": 500000})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeData(t, w).(map[string]interface{})["id"].(float64)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/rooms/%.0f", id), gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchRoomToggleActive(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{"name": "Deluxe", "price": 500000})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeData(t, w).(map[string]interface{})["id"].(float64)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/rooms/%.0f", id), gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code)

	public := doJSON(t, r, http.MethodGet, "/api/public/rooms", nil)
	assert.Len(t, decodeData(t, public).([]interface{}), 0)
}

func TestPatchRoomReorderedGalleryRoundTrips(t *testing.T) {
	r, db := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", gin.H{
		"name":      "Deluxe",
		"price":     500000,
		"image_url": "a.jpg",
		"images":    []string{"a.jpg", "b.jpg", "c.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeData(t, w).(map[string]interface{})["id"].(float64)

	// Reordering happens in the form; submit sends the whole list back.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/rooms/%.0f", id), gin.H{
		"images":   []string{"c.jpg", "a.jpg", "b.jpg"},
		"features": []string{"AC", "WiFi"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeData(t, w).(map[string]interface{})
	assert.Equal(t, []interface{}{"c.jpg", "a.jpg", "b.jpg"}, updated["images"])
	assert.Equal(t, []interface{}{"AC", "WiFi"}, updated["features"])

	var stored models.Room
	require.NoError(t, db.First(&stored, uint(id)).Error)
	assert.Equal(t, []string{"c.jpg", "a.jpg", "b.jpg"}, []string(stored.Images))

	public := doJSON(t, r, http.MethodGet, "/api/public/rooms", nil)
	items := decodeData(t, public).([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, []interface{}{"a.jpg", "c.jpg", "b.jpg"},
		items[0].(map[string]interface{})["gallery"])
}

func TestDeleteRoomUnknownIDReturns404(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/rooms/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReviewValidatesRating(t *testing.T) {
	r, _ := setupContentAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/reviews", gin.H{"guest_name": "Budi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/reviews", gin.H{"guest_name": "Budi", "rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/reviews", gin.H{"guest_name": "Budi", "rating": 5})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPublicReviewsRespectLimit(t *testing.T) {
	r, _ := setupContentAPI(t)

	for i := 0; i < 8; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/admin/reviews", gin.H{
			"guest_name": fmt.Sprintf("Guest %d", i), "rating": 5,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	public := doJSON(t, r, http.MethodGet, "/api/public/reviews", nil)
	assert.Len(t, decodeData(t, public).([]interface{}), 6)

	public = doJSON(t, r, http.MethodGet, "/api/public/reviews?limit=3", nil)
	assert.Len(t, decodeData(t, public).([]interface{}), 3)
}
