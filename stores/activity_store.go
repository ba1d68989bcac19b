package stores

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
)

type ActivityStore struct {
	DB *gorm.DB
}

func NewActivityStore(db *gorm.DB) *ActivityStore {
	return &ActivityStore{DB: db}
}

func (s *ActivityStore) Get(id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.DB.Preload("Creator.Profile").First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityStore) ListWindow(window catalog.Window, now time.Time) ([]models.Activity, error) {
	query := s.DB.Preload("Creator.Profile")
	if window == catalog.WindowPast {
		query = query.Where("date < ?", now).Order("date DESC")
	} else {
		query = query.Where("date >= ?", now).Order("date ASC")
	}

	var activities []models.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *ActivityStore) FeaturedUpcoming(now time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.DB.Preload("Creator.Profile").
		Where("is_featured = ? AND date >= ?", true, now).
		Order("date ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *ActivityStore) SoonestUpcoming(now time.Time, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.DB.Preload("Creator.Profile").
		Where("date >= ?", now).
		Order("date ASC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
