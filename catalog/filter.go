package catalog

import (
	"math/rand"
	"strings"

	"github.com/eco-connect/api-go/models"
)

// Window selects the time partition of the catalog relative to now.
type Window string

const (
	WindowUpcoming Window = "upcoming"
	WindowPast     Window = "past"
)

// ParseWindow maps a raw query value onto a window. Anything unrecognized,
// including the empty string, degrades to upcoming.
func ParseWindow(s string) Window {
	if Window(s) == WindowPast {
		return WindowPast
	}
	return WindowUpcoming
}

// CatalogQuery carries the raw listing filters as they arrive from the HTTP
// layer. Invalid values never error; each dimension degrades to "no filter".
type CatalogQuery struct {
	Search       string
	Category     string
	Window       string
	OfficialOnly bool
}

// ListActivities returns the filtered, ordered catalog slice for q. Every
// activity falls in exactly one window for a given clock reading; filters are
// AND-composed on top of the window partition. The official-only restriction
// applies uniformly to both windows.
func (e *Engine) ListActivities(q CatalogQuery) ([]models.Activity, error) {
	now := e.Now()
	activities, err := e.Activities.ListWindow(ParseWindow(q.Window), now)
	if err != nil {
		return nil, err
	}

	category, categoryOK := models.ParseCategory(q.Category)
	search := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if q.OfficialOnly && !a.IsOfficial() {
			continue
		}
		if categoryOK && a.Category != category {
			continue
		}
		if search != "" && !matchesSearch(&a, search) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered, nil
}

func matchesSearch(a *models.Activity, lowered string) bool {
	return strings.Contains(strings.ToLower(a.Title), lowered) ||
		strings.Contains(strings.ToLower(a.Description), lowered) ||
		strings.Contains(strings.ToLower(a.Location), lowered)
}

// FeaturedLimit is how many activities the homepage highlights.
const FeaturedLimit = 4

// FeaturedActivities picks up to FeaturedLimit upcoming featured activities,
// uniformly at random when more are eligible. The pick is redone on every call.
// With no featured candidates at all it falls back to the soonest upcoming
// activities regardless of the flag.
func (e *Engine) FeaturedActivities() ([]models.Activity, error) {
	now := e.Now()
	candidates, err := e.Activities.FeaturedUpcoming(now)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return e.Activities.SoonestUpcoming(now, FeaturedLimit)
	}
	if len(candidates) <= FeaturedLimit {
		return candidates, nil
	}
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:FeaturedLimit], nil
}
