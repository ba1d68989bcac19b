// Package catalog is the decision core of the activity API: which activities a
// catalog query should return, whether a user may register, cancel, rate or
// upload media for an activity, and which activities the homepage highlights.
// It talks to persistence through small store interfaces and takes the current
// time from an injected clock, so every rule is testable without a database.
package catalog

import (
	"time"

	"github.com/eco-connect/api-go/models"
)

// Clock supplies "now" for all upcoming/past decisions.
type Clock func() time.Time

// ActivityStore is the persistence surface the engine needs for activities.
// Listing methods return rows with Creator and Creator.Profile preloaded and
// already ordered: upcoming ascending by date, past descending.
type ActivityStore interface {
	Get(id uint) (*models.Activity, error)
	ListWindow(window Window, now time.Time) ([]models.Activity, error)
	FeaturedUpcoming(now time.Time) ([]models.Activity, error)
	SoonestUpcoming(now time.Time, limit int) ([]models.Activity, error)
}

// RegistrationStore persists (user, activity) registration rows. Find returns
// ErrNotFound when no row exists; Create returns ErrDuplicate when the unique
// pair constraint fires.
type RegistrationStore interface {
	Find(activityID, userID uint) (*models.Registration, error)
	Create(reg *models.Registration) error
	SetStatus(id uint, status string) error
	CountJoined(activityID uint) (int64, error)
	ListForUser(userID uint) ([]models.Registration, error)
}

// RatingStore persists (user, activity) rating rows under the same uniqueness
// contract as RegistrationStore.
type RatingStore interface {
	Find(activityID, userID uint) (*models.Rating, error)
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	ListForActivity(activityID uint) ([]models.Rating, error)
}

// Engine evaluates catalog queries and per-user eligibility. It holds no
// state of its own beyond its collaborators and is safe for concurrent use.
type Engine struct {
	Activities    ActivityStore
	Registrations RegistrationStore
	Ratings       RatingStore
	Now           Clock
}

func NewEngine(activities ActivityStore, registrations RegistrationStore, ratings RatingStore, now Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		Activities:    activities,
		Registrations: registrations,
		Ratings:       ratings,
		Now:           now,
	}
}
