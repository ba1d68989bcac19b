package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      *string        `gorm:"type:varchar(255)" json:"-"` // nil for Google-only accounts
	GoogleID      *string        `gorm:"uniqueIndex" json:"-"`
	Provider      string         `gorm:"type:varchar(20);default:'email'" json:"provider"`
	Role          string         `gorm:"type:varchar(20);default:'user'" json:"role"` // "user" or "staff"
	Profile       *Profile       `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Activities    []Activity     `json:"activities,omitempty" gorm:"foreignKey:CreatedBy"`
	Registrations []Registration `json:"registrations,omitempty" gorm:"foreignKey:UserID"`
	Ratings       []Rating       `json:"ratings,omitempty" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

// IsStaff reports whether the user can manage any activity.
func (u *User) IsStaff() bool {
	return u.Role == "staff"
}
