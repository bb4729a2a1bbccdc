package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-site-backend/realtime"
)

// Record is any managed content row. The ID accessor feeds change
// notifications after mutations.
type Record interface {
	RecordID() uint
}

// ListOptions narrow a list fetch. The zero value returns every row in the
// resource's default order.
type ListOptions struct {
	ActiveOnly bool   // only rows with is_active = true
	OrderBy    string // overrides the resource default when set
	Limit      int    // 0 = no limit
}

// Resource is the one CRUD implementation behind every managed content
// table (rooms, facilities, services, reviews, footer logos). Each screen
// used to carry its own copy of this logic; the per-resource differences
// (ordering, validation, decoration) live in the controller wiring instead.
type Resource[T Record] struct {
	db    *gorm.DB
	table string
	order string // default ORDER BY, includes the id tie-break
	hub   realtime.Notifier
}

func NewResource[T Record](db *gorm.DB, table, defaultOrder string, hub realtime.Notifier) *Resource[T] {
	return &Resource[T]{db: db, table: table, order: defaultOrder, hub: hub}
}

func (r *Resource[T]) Table() string { return r.table }

// List returns the full result set for opts; every call is a full replace
// of whatever the caller held, never a merge.
func (r *Resource[T]) List(opts ListOptions) ([]T, error) {
	var records []T

	q := r.db.Model(new(T))
	if opts.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	order := opts.OrderBy
	if order == "" {
		order = r.order
	}
	q = q.Order(order)
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	err := q.Find(&records).Error
	return records, err
}

func (r *Resource[T]) Get(id uint) (T, error) {
	var record T
	err := r.db.First(&record, id).Error
	return record, err
}

func (r *Resource[T]) Create(record *T) error {
	if err := r.db.Create(record).Error; err != nil {
		return err
	}
	r.notify(realtime.ActionInsert, (*record).RecordID())
	return nil
}

// Patch applies a partial update from a JSON body. Protected columns are
// stripped so a client cannot rewrite identity or timestamps.
func (r *Resource[T]) Patch(id uint, fields map[string]interface{}) (T, error) {
	var record T

	for _, key := range []string{"id", "created_at", "updated_at", "deleted_at"} {
		delete(fields, key)
	}

	// Decoded JSON arrays and objects (images, features, settings blobs)
	// cannot be bound by a map update as-is; re-encode them so the driver
	// writes the JSON column text.
	for key, value := range fields {
		switch value.(type) {
		case []interface{}, map[string]interface{}:
			data, err := json.Marshal(value)
			if err != nil {
				return record, err
			}
			fields[key] = datatypes.JSON(data)
		}
	}

	if err := r.db.First(&record, id).Error; err != nil {
		return record, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&record).Updates(fields).Error; err != nil {
			return record, err
		}
	}
	if err := r.db.First(&record, id).Error; err != nil {
		return record, err
	}

	r.notify(realtime.ActionUpdate, id)
	return record, nil
}

func (r *Resource[T]) Delete(id uint) error {
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.notify(realtime.ActionDelete, id)
	return nil
}

func (r *Resource[T]) Count(activeOnly bool) (int64, error) {
	var count int64
	q := r.db.Model(new(T))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *Resource[T]) notify(action string, id uint) {
	if r.hub != nil {
		r.hub.Notify(r.table, action, id)
	}
}
