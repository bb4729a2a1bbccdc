package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-site-backend/models"
	"hotel-site-backend/realtime"
)

func newRoomResource(t *testing.T, rec *notifyRecorder) *Resource[models.Room] {
	t.Helper()
	db := setupTestDB(t)
	var hub realtime.Notifier
	if rec != nil {
		hub = rec
	}
	return NewResource[models.Room](db, "rooms", "sort_order ASC, id ASC", hub)
}

func seedRoom(t *testing.T, r *Resource[models.Room], name string, sortOrder int, active bool) models.Room {
	t.Helper()
	room := models.Room{Name: name, Price: 500000, SortOrder: sortOrder, IsActive: active}
	require.NoError(t, r.Create(&room))
	return room
}

func TestResourceListFollowsSortOrder(t *testing.T) {
	r := newRoomResource(t, nil)

	seedRoom(t, r, "Suite", 3, true)
	seedRoom(t, r, "Deluxe", 1, true)
	seedRoom(t, r, "Standard", 2, true)

	rooms, err := r.List(ListOptions{})
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "Deluxe", rooms[0].Name)
	assert.Equal(t, "Standard", rooms[1].Name)
	assert.Equal(t, "Suite", rooms[2].Name)
}

func TestResourceListSortOrderTieBreaksOnID(t *testing.T) {
	r := newRoomResource(t, nil)

	first := seedRoom(t, r, "A", 1, true)
	second := seedRoom(t, r, "B", 1, true)

	rooms, err := r.List(ListOptions{})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, first.ID, rooms[0].ID)
	assert.Equal(t, second.ID, rooms[1].ID)
}

func TestResourceReorderIsReflectedOnRefetch(t *testing.T) {
	r := newRoomResource(t, nil)

	a := seedRoom(t, r, "A", 1, true)
	seedRoom(t, r, "B", 2, true)

	_, err := r.Patch(a.ID, map[string]interface{}{"sort_order": 5})
	require.NoError(t, err)

	rooms, err := r.List(ListOptions{})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "B", rooms[0].Name)
	assert.Equal(t, "A", rooms[1].Name)
}

func TestResourceActiveOnlyHidesFromPublicNotAdmin(t *testing.T) {
	r := newRoomResource(t, nil)

	visible := seedRoom(t, r, "Visible", 1, true)
	hidden := seedRoom(t, r, "Hidden", 2, false)

	public, err := r.List(ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	admin, err := r.List(ListOptions{})
	require.NoError(t, err)
	assert.Len(t, admin, 2)

	// The hidden record stays retrievable for editing.
	got, err := r.Get(hidden.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestResourceToggleActiveRemovesFromPublicList(t *testing.T) {
	r := newRoomResource(t, nil)
	room := seedRoom(t, r, "Deluxe", 1, true)

	_, err := r.Patch(room.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	public, err := r.List(ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestResourceListLimit(t *testing.T) {
	r := newRoomResource(t, nil)
	for i := 1; i <= 5; i++ {
		seedRoom(t, r, "Room", i, true)
	}

	rooms, err := r.List(ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestResourcePatchStripsProtectedColumns(t *testing.T) {
	r := newRoomResource(t, nil)
	room := seedRoom(t, r, "Deluxe", 1, true)

	updated, err := r.Patch(room.ID, map[string]interface{}{
		"id":    999,
		"name":  "Deluxe Twin",
		"price": 750000.0,
	})
	require.NoError(t, err)
	assert.Equal(t, room.ID, updated.ID)
	assert.Equal(t, "Deluxe Twin", updated.Name)
	assert.Equal(t, 750000.0, updated.Price)
}

func TestResourcePatchPersistsJSONArrayColumns(t *testing.T) {
	r := newRoomResource(t, nil)
	room := seedRoom(t, r, "Deluxe", 1, true)

	// Array fields arrive from a JSON body as []interface{}; the gallery
	// form submits the full reordered list this way.
	updated, err := r.Patch(room.ID, map[string]interface{}{
		"images":   []interface{}{"b.jpg", "a.jpg"},
		"features": []interface{}{"AC", "WiFi"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, []string(updated.Images))
	assert.Equal(t, []string{"AC", "WiFi"}, []string(updated.Features))

	stored, err := r.Get(room.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, []string(stored.Images))
}

func TestResourcePatchUnknownIDReturnsNotFound(t *testing.T) {
	r := newRoomResource(t, nil)

	_, err := r.Patch(42, map[string]interface{}{"name": "Ghost"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestResourceDelete(t *testing.T) {
	r := newRoomResource(t, nil)
	room := seedRoom(t, r, "Deluxe", 1, true)

	require.NoError(t, r.Delete(room.ID))
	assert.True(t, errors.Is(r.Delete(room.ID), gorm.ErrRecordNotFound))
}

func TestResourceCount(t *testing.T) {
	r := newRoomResource(t, nil)
	seedRoom(t, r, "A", 1, true)
	seedRoom(t, r, "B", 2, false)

	total, err := r.Count(false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	active, err := r.Count(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}

func TestResourceMutationsNotifyHub(t *testing.T) {
	rec := &notifyRecorder{}
	r := newRoomResource(t, rec)

	room := seedRoom(t, r, "Deluxe", 1, true)
	_, err := r.Patch(room.ID, map[string]interface{}{"name": "Deluxe Twin"})
	require.NoError(t, err)
	require.NoError(t, r.Delete(room.ID))

	events := rec.all()
	require.Len(t, events, 3)
	assert.Equal(t, realtime.ActionInsert, events[0].Action)
	assert.Equal(t, realtime.ActionUpdate, events[1].Action)
	assert.Equal(t, realtime.ActionDelete, events[2].Action)
	for _, ev := range events {
		assert.Equal(t, "rooms", ev.Table)
		assert.Equal(t, room.ID, ev.ID)
	}
}

func TestReviewPublicOrderingFeaturedFirstThenNewest(t *testing.T) {
	db := setupTestDB(t)
	r := NewResource[models.Review](db, "reviews", "created_at DESC, id DESC", nil)

	old := models.Review{GuestName: "Old", Rating: 4, IsActive: true}
	require.NoError(t, r.Create(&old))
	newest := models.Review{GuestName: "Newest", Rating: 5, IsActive: true}
	require.NoError(t, r.Create(&newest))
	featured := models.Review{GuestName: "Featured", Rating: 5, IsFeatured: true, IsActive: true}
	require.NoError(t, r.Create(&featured))

	reviews, err := r.List(ListOptions{
		ActiveOnly: true,
		OrderBy:    "is_featured DESC, created_at DESC, id DESC",
	})
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "Featured", reviews[0].GuestName)
	assert.Equal(t, "Newest", reviews[1].GuestName)
	assert.Equal(t, "Old", reviews[2].GuestName)
}
