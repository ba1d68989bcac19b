package models

import (
	"time"
)

const (
	RegistrationJoined    = "joined"
	RegistrationCompleted = "completed"
	RegistrationCancelled = "cancelled"
)

// Registration records a user's join/cancel history for one activity. At most
// one row exists per (activity, user); re-joining flips the status back to
// joined instead of inserting a second row.
type Registration struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActivityID uint      `gorm:"column:activity_id;not null;uniqueIndex:idx_registration_pair" json:"activityId"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:idx_registration_pair" json:"userId"`
	Status     string    `gorm:"type:varchar(20);not null;default:'joined'" json:"status"`
	JoinedAt   time.Time `gorm:"autoCreateTime" json:"joinedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Activity Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}
