package services

import (
	"fmt"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-site-backend/models"
	"hotel-site-backend/realtime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.SiteSetting{},
		&models.Room{},
		&models.Facility{},
		&models.Service{},
		&models.Review{},
		&models.FooterLogo{},
	); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

// notifyRecorder captures hub notifications for assertions.
type notifyRecorder struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (r *notifyRecorder) Notify(table, action string, id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, realtime.Event{Type: realtime.EventChange, Table: table, Action: action, ID: id})
}

func (r *notifyRecorder) all() []realtime.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]realtime.Event(nil), r.events...)
}
