package catalog

import (
	"errors"
	"strings"

	"github.com/eco-connect/api-go/models"
)

// RatingStats aggregates the ratings attached to one activity. Count includes
// comment-only ratings; StarredCount and Average cover only rows that carry a
// star value.
type RatingStats struct {
	Average      float64 `json:"average"`
	Count        int     `json:"count"`
	StarredCount int     `json:"starredCount"`
}

// Rate upserts the caller's rating for an activity. The comment is mandatory,
// stars are optional but must be 1-5 when present. A concurrent double-submit
// collapses onto one row via the unique pair index.
func (e *Engine) Rate(activityID, userID uint, stars *int, comment string) (*models.Rating, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrCommentRequired
	}
	if stars != nil && (*stars < 1 || *stars > 5) {
		return nil, ErrInvalidStars
	}
	if _, err := e.Activities.Get(activityID); err != nil {
		return nil, err
	}

	existing, err := e.Ratings.Find(activityID, userID)
	switch {
	case err == nil:
		existing.Stars = stars
		existing.Comment = comment
		if err := e.Ratings.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, ErrNotFound):
		rating := &models.Rating{
			ActivityID: activityID,
			UserID:     userID,
			Stars:      stars,
			Comment:    comment,
		}
		if err := e.Ratings.Create(rating); err != nil {
			if errors.Is(err, ErrDuplicate) {
				return e.Rate(activityID, userID, stars, comment)
			}
			return nil, err
		}
		return rating, nil
	default:
		return nil, err
	}
}

// UserRating resolves the caller's own rating, if any.
func (e *Engine) UserRating(activityID, userID uint) (*models.Rating, error) {
	return e.Ratings.Find(activityID, userID)
}

// Stats computes the aggregate over all ratings currently attached to the
// activity. Zero ratings report average 0.
func (e *Engine) Stats(activityID uint) (RatingStats, error) {
	ratings, err := e.Ratings.ListForActivity(activityID)
	if err != nil {
		return RatingStats{}, err
	}
	stats := RatingStats{Count: len(ratings)}
	sum := 0
	for _, r := range ratings {
		if r.Stars != nil {
			stats.StarredCount++
			sum += *r.Stars
		}
	}
	if stats.StarredCount > 0 {
		stats.Average = float64(sum) / float64(stats.StarredCount)
	}
	return stats, nil
}
