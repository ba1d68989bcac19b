// Package analytics tracks activity page views. The catalog engine never
// touches it; controllers call it as a separate, injectable collaborator so
// the counters can be swapped out or disabled without touching eligibility
// logic.
package analytics

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eco-connect/api-go/models"
)

// Recorder is what controllers depend on.
type Recorder interface {
	RecordView(ctx context.Context, activityID, userID uint)
	Views(ctx context.Context, activityID uint) int64
}

// Tracker keeps a live per-activity counter in Redis and a durable VisitLog
// row in Postgres. Failures are logged and swallowed: analytics must never
// fail a request.
type Tracker struct {
	DB  *gorm.DB
	RDB *redis.Client
	Log *zap.Logger
}

func NewTracker(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Tracker {
	return &Tracker{DB: db, RDB: rdb, Log: log}
}

func viewKey(activityID uint) string {
	return fmt.Sprintf("activity:%d:views", activityID)
}

func (t *Tracker) RecordView(ctx context.Context, activityID, userID uint) {
	if t.RDB != nil {
		if err := t.RDB.Incr(ctx, viewKey(activityID)).Err(); err != nil {
			t.Log.Warn("view counter incr failed", zap.Uint("activity_id", activityID), zap.Error(err))
		}
	}
	visit := models.VisitLog{ActivityID: activityID, UserID: userID}
	if err := t.DB.WithContext(ctx).Create(&visit).Error; err != nil {
		t.Log.Warn("visit log write failed", zap.Uint("activity_id", activityID), zap.Error(err))
	}
}

func (t *Tracker) Views(ctx context.Context, activityID uint) int64 {
	if t.RDB == nil {
		return t.viewsFromLog(ctx, activityID)
	}
	n, err := t.RDB.Get(ctx, viewKey(activityID)).Int64()
	if err != nil {
		if err != redis.Nil {
			t.Log.Warn("view counter read failed", zap.Uint("activity_id", activityID), zap.Error(err))
		}
		return t.viewsFromLog(ctx, activityID)
	}
	return n
}

func (t *Tracker) viewsFromLog(ctx context.Context, activityID uint) int64 {
	var count int64
	if err := t.DB.WithContext(ctx).Model(&models.VisitLog{}).Where("activity_id = ?", activityID).Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// Noop discards everything. Handy in tests and when Redis is not configured
// and view tracking is unwanted entirely.
type Noop struct{}

func (Noop) RecordView(ctx context.Context, activityID, userID uint) {}
func (Noop) Views(ctx context.Context, activityID uint) int64        { return 0 }
