package catalog_test

import (
	"sort"
	"time"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
)

// In-memory stores backing the engine tests.

type fakeActivityStore struct {
	activities []models.Activity
}

func (s *fakeActivityStore) Get(id uint) (*models.Activity, error) {
	for i := range s.activities {
		if s.activities[i].ID == id {
			return &s.activities[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *fakeActivityStore) ListWindow(window catalog.Window, now time.Time) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range s.activities {
		if window == catalog.WindowUpcoming && !a.Date.Before(now) {
			out = append(out, a)
		}
		if window == catalog.WindowPast && a.Date.Before(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if window == catalog.WindowUpcoming {
			return out[i].Date.Before(out[j].Date)
		}
		return out[j].Date.Before(out[i].Date)
	})
	return out, nil
}

func (s *fakeActivityStore) FeaturedUpcoming(now time.Time) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range s.activities {
		if a.IsFeatured && !a.Date.Before(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeActivityStore) SoonestUpcoming(now time.Time, limit int) ([]models.Activity, error) {
	out, _ := s.ListWindow(catalog.WindowUpcoming, now)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeRegistrationStore struct {
	rows   []*models.Registration
	nextID uint

	// raceWinner, when set, is inserted during the next Create call, which
	// then fails with ErrDuplicate. Simulates losing the unique-index race to
	// a concurrent request.
	raceWinner *models.Registration
}

func (s *fakeRegistrationStore) Find(activityID, userID uint) (*models.Registration, error) {
	for _, r := range s.rows {
		if r.ActivityID == activityID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *fakeRegistrationStore) Create(reg *models.Registration) error {
	if s.raceWinner != nil {
		winner := s.raceWinner
		s.raceWinner = nil
		s.nextID++
		winner.ID = s.nextID
		s.rows = append(s.rows, winner)
		return catalog.ErrDuplicate
	}
	if _, err := s.Find(reg.ActivityID, reg.UserID); err == nil {
		return catalog.ErrDuplicate
	}
	s.nextID++
	reg.ID = s.nextID
	s.rows = append(s.rows, reg)
	return nil
}

func (s *fakeRegistrationStore) SetStatus(id uint, status string) error {
	for _, r := range s.rows {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return catalog.ErrNotFound
}

func (s *fakeRegistrationStore) CountJoined(activityID uint) (int64, error) {
	var n int64
	for _, r := range s.rows {
		if r.ActivityID == activityID && r.Status == models.RegistrationJoined {
			n++
		}
	}
	return n, nil
}

func (s *fakeRegistrationStore) ListForUser(userID uint) ([]models.Registration, error) {
	var out []models.Registration
	for _, r := range s.rows {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeRatingStore struct {
	rows      []*models.Rating
	nextID    uint
	createErr error
}

func (s *fakeRatingStore) Find(activityID, userID uint) (*models.Rating, error) {
	for _, r := range s.rows {
		if r.ActivityID == activityID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *fakeRatingStore) Create(rating *models.Rating) error {
	if s.createErr != nil {
		err := s.createErr
		s.createErr = nil
		return err
	}
	if _, err := s.Find(rating.ActivityID, rating.UserID); err == nil {
		return catalog.ErrDuplicate
	}
	s.nextID++
	rating.ID = s.nextID
	s.rows = append(s.rows, rating)
	return nil
}

func (s *fakeRatingStore) Update(rating *models.Rating) error {
	for _, r := range s.rows {
		if r.ID == rating.ID {
			r.Stars = rating.Stars
			r.Comment = rating.Comment
			return nil
		}
	}
	return catalog.ErrNotFound
}

func (s *fakeRatingStore) ListForActivity(activityID uint) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range s.rows {
		if r.ActivityID == activityID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// testNow is the fixed clock reading used across the engine tests.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type fixture struct {
	engine        *catalog.Engine
	activities    *fakeActivityStore
	registrations *fakeRegistrationStore
	ratings       *fakeRatingStore
}

func newFixture(activities ...models.Activity) *fixture {
	f := &fixture{
		activities:    &fakeActivityStore{activities: activities},
		registrations: &fakeRegistrationStore{},
		ratings:       &fakeRatingStore{},
	}
	f.engine = catalog.NewEngine(f.activities, f.registrations, f.ratings, fixedClock)
	return f
}

func activityAt(id uint, date time.Time) models.Activity {
	a := models.Activity{
		Category: models.CategoryOther,
		Title:    "Activity",
		Date:     date,
	}
	a.ID = id
	return a
}
