package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Category classifies an environmental activity.
type Category string

const (
	CategoryTreePlanting Category = "Tree Planting"
	CategoryRecycling    Category = "Recycling"
	CategoryCleanup      Category = "Cleanup"
	CategoryAwareness    Category = "Awareness"
	CategoryEducation    Category = "Education"
	CategoryOther        Category = "Other"
)

var categories = []Category{
	CategoryTreePlanting,
	CategoryRecycling,
	CategoryCleanup,
	CategoryAwareness,
	CategoryEducation,
	CategoryOther,
}

// Categories returns all known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps a raw string onto a known category. The second return is
// false for anything unrecognized, including the empty string.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type Activity struct {
	gorm.Model
	Category      Category       `json:"category" gorm:"type:varchar(50);not null;default:'Other'"`
	Title         string         `json:"title" gorm:"not null;type:varchar(200)"`
	Description   string         `json:"description" gorm:"type:text"`
	Location      string         `json:"location" gorm:"type:varchar(200)"`
	Date          time.Time      `json:"date" gorm:"not null;index"` // sole determinant of upcoming vs past
	IsFeatured    bool           `json:"isFeatured" gorm:"default:false"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`
	CreatedBy     uint           `json:"createdBy" gorm:"not null"`
	Creator       User           `json:"creator" gorm:"foreignKey:CreatedBy"`
	Registrations []Registration `json:"registrations,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	Ratings       []Rating       `json:"ratings,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	Media         []Media        `json:"media,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// IsPast reports whether the activity date is strictly before now.
func (a *Activity) IsPast(now time.Time) bool {
	return a.Date.Before(now)
}

// IsOfficial reports whether the activity was created by an organizer account.
// Requires Creator.Profile to be preloaded; a missing profile means unofficial.
func (a *Activity) IsOfficial() bool {
	return a.Creator.Profile != nil && a.Creator.Profile.IsOrganizer
}
