// Package analytics stores page-view records and per-post view counters.
package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/clinic-cms/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultRecentLimit bounds Recent when callers pass a non-positive limit.
const DefaultRecentLimit = 100

// Recorder persists analytics. Implementations must be safe for concurrent use.
type Recorder interface {
	Record(ctx context.Context, rec model.AnalyticsRecord) error
	// IncrementView adds one view to slug, creating the counter at 1 when absent.
	IncrementView(ctx context.Context, slug string) error
	Views(ctx context.Context, slug string) (int64, error)
	Recent(ctx context.Context, limit int) ([]model.AnalyticsRecord, error)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return DefaultRecentLimit
	}
	return limit
}

// GormRecorder keeps analytics in the main database.
type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) Record(ctx context.Context, rec model.AnalyticsRecord) error {
	rec.ID = 0
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *GormRecorder) IncrementView(ctx context.Context, slug string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"views":      gorm.Expr("post_views.views + 1"),
			"updated_at": now,
		}),
	}).Create(&model.PostView{Slug: slug, Views: 1, CreatedAt: now, UpdatedAt: now}).Error
}

func (r *GormRecorder) Views(ctx context.Context, slug string) (int64, error) {
	var pv model.PostView
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&pv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return pv.Views, nil
}

func (r *GormRecorder) Recent(ctx context.Context, limit int) ([]model.AnalyticsRecord, error) {
	records := []model.AnalyticsRecord{}
	err := r.db.WithContext(ctx).Order("timestamp DESC").Order("id DESC").Limit(normalizeLimit(limit)).Find(&records).Error
	return records, err
}
