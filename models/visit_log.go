package models

import (
	"time"

	"gorm.io/gorm"
)

// VisitLog records a single view of an activity detail page. UserID is zero
// for anonymous visitors. Live counters are kept in Redis; these rows are the
// durable trail behind them.
type VisitLog struct {
	gorm.Model
	CreatedAt  time.Time `json:"createdAt"`
	ActivityID uint      `json:"activityId" gorm:"not null;index"`
	Activity   Activity  `json:"-" gorm:"foreignKey:ActivityID"`
	UserID     uint      `json:"userId" gorm:"index"`
}
