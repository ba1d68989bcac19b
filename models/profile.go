package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile carries the public-facing part of a user account. A user without a
// profile row is treated everywhere as a regular, non-organizer member.
type Profile struct {
	gorm.Model
	UserID           uint      `json:"userId" gorm:"uniqueIndex;not null"`
	User             User      `json:"-" gorm:"foreignKey:UserID"`
	Photo            string    `json:"photo"`
	Description      string    `json:"description" gorm:"type:text"`
	IsOrganizer      bool      `json:"isOrganizer" gorm:"default:false"`
	OrganizationName string    `json:"organizationName" gorm:"type:varchar(200)"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
