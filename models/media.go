package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Media is a photo or video a participant uploaded for an activity after it
// took place. The file itself lives in object storage; only the public URL and
// storage key are recorded here.
type Media struct {
	gorm.Model
	ActivityID uint      `json:"activityId" gorm:"not null;index"`
	Activity   Activity  `json:"-" gorm:"foreignKey:ActivityID"`
	CreatedBy  uint      `json:"createdBy" gorm:"not null"`
	Creator    User      `json:"creator" gorm:"foreignKey:CreatedBy"`
	FileURL    string    `json:"fileUrl" gorm:"not null;type:text"`
	StorageKey string    `json:"-" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (m *Media) IsImage() bool {
	return hasSuffixFold(m.FileURL, ".png", ".jpg", ".jpeg", ".gif", ".webp")
}

func (m *Media) IsVideo() bool {
	return hasSuffixFold(m.FileURL, ".mp4", ".mov", ".avi", ".mkv", ".webm")
}

func hasSuffixFold(name string, suffixes ...string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
