package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
)

type RegistrationStore struct {
	DB *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{DB: db}
}

func (s *RegistrationStore) Find(activityID, userID uint) (*models.Registration, error) {
	var reg models.Registration
	err := s.DB.Where("activity_id = ? AND user_id = ?", activityID, userID).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (s *RegistrationStore) Create(reg *models.Registration) error {
	if err := s.DB.Create(reg).Error; err != nil {
		if isUniqueViolation(err) {
			return catalog.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *RegistrationStore) SetStatus(id uint, status string) error {
	return s.DB.Model(&models.Registration{}).Where("id = ?", id).Update("status", status).Error
}

func (s *RegistrationStore) CountJoined(activityID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Registration{}).
		Where("activity_id = ? AND status = ?", activityID, models.RegistrationJoined).
		Count(&count).Error
	return count, err
}

func (s *RegistrationStore) ListForUser(userID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.DB.Preload("Activity").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}
