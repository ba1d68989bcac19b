package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
)

type RatingStore struct {
	DB *gorm.DB
}

func NewRatingStore(db *gorm.DB) *RatingStore {
	return &RatingStore{DB: db}
}

func (s *RatingStore) Find(activityID, userID uint) (*models.Rating, error) {
	var rating models.Rating
	err := s.DB.Where("activity_id = ? AND user_id = ?", activityID, userID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (s *RatingStore) Create(rating *models.Rating) error {
	if err := s.DB.Create(rating).Error; err != nil {
		if isUniqueViolation(err) {
			return catalog.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update persists the mutable fields, writing NULL when the star value was
// removed.
func (s *RatingStore) Update(rating *models.Rating) error {
	return s.DB.Model(rating).
		Select("stars", "comment").
		Updates(map[string]interface{}{
			"stars":   rating.Stars,
			"comment": rating.Comment,
		}).Error
}

func (s *RatingStore) ListForActivity(activityID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.DB.Preload("User").
		Where("activity_id = ?", activityID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
