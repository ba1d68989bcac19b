package models

import (
	"time"
)

// Rating is a user's review of an activity: a mandatory comment plus an
// optional 1-5 star score. One row per (activity, user); resubmission updates
// the existing row in place.
type Rating struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActivityID uint      `gorm:"column:activity_id;not null;uniqueIndex:idx_rating_pair" json:"activityId"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:idx_rating_pair" json:"userId"`
	Stars      *int      `gorm:"type:smallint" json:"stars"` // nil when the user only left a comment
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Activity Activity `gorm:"foreignKey:ActivityID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
