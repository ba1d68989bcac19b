package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
)

func organizerActivity(id uint, date time.Time) models.Activity {
	a := activityAt(id, date)
	a.Creator = models.User{Profile: &models.Profile{IsOrganizer: true}}
	return a
}

func TestListActivitiesPartitionsByWindow(t *testing.T) {
	f := newFixture(
		activityAt(1, testNow.Add(-48*time.Hour)),
		activityAt(2, testNow.Add(-1*time.Hour)),
		activityAt(3, testNow), // boundary: date == now counts as upcoming
		activityAt(4, testNow.Add(time.Hour)),
		activityAt(5, testNow.Add(72*time.Hour)),
	)

	upcoming, err := f.engine.ListActivities(catalog.CatalogQuery{Window: "upcoming"})
	require.NoError(t, err)
	past, err := f.engine.ListActivities(catalog.CatalogQuery{Window: "past"})
	require.NoError(t, err)

	assert.Len(t, upcoming, 3)
	assert.Len(t, past, 2)

	seen := map[uint]bool{}
	for _, a := range append(upcoming, past...) {
		assert.False(t, seen[a.ID], "activity %d appears in both windows", a.ID)
		seen[a.ID] = true
	}
	assert.Len(t, seen, 5, "every activity lands in exactly one window")

	// Upcoming soonest first, past most recent first.
	assert.Equal(t, []uint{3, 4, 5}, ids(upcoming))
	assert.Equal(t, []uint{2, 1}, ids(past))
}

func ids(activities []models.Activity) []uint {
	out := make([]uint, len(activities))
	for i, a := range activities {
		out[i] = a.ID
	}
	return out
}

func TestListActivitiesDefaultsToUpcoming(t *testing.T) {
	f := newFixture(
		activityAt(1, testNow.Add(-time.Hour)),
		activityAt(2, testNow.Add(time.Hour)),
	)

	for _, window := range []string{"", "next-week", "PAST"} {
		got, err := f.engine.ListActivities(catalog.CatalogQuery{Window: window})
		require.NoError(t, err)
		assert.Equal(t, []uint{2}, ids(got), "window %q", window)
	}
}

func TestListActivitiesFreeTextSearch(t *testing.T) {
	beach := activityAt(1, testNow.Add(time.Hour))
	beach.Title = "Beach Cleanup"
	park := activityAt(2, testNow.Add(2*time.Hour))
	park.Description = "Meet at the beach entrance"
	river := activityAt(3, testNow.Add(3*time.Hour))
	river.Location = "Beachwood Park"
	other := activityAt(4, testNow.Add(4*time.Hour))
	other.Title = "Recycling drive"

	f := newFixture(beach, park, river, other)

	got, err := f.engine.ListActivities(catalog.CatalogQuery{Search: "BEACH"})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids(got), "matches title, description and location case-insensitively")

	got, err = f.engine.ListActivities(catalog.CatalogQuery{Search: "   "})
	require.NoError(t, err)
	assert.Len(t, got, 4, "blank search is a no-op")
}

func TestListActivitiesCategoryFilter(t *testing.T) {
	cleanup := activityAt(1, testNow.Add(time.Hour))
	cleanup.Category = models.CategoryCleanup
	recycling := activityAt(2, testNow.Add(2*time.Hour))
	recycling.Category = models.CategoryRecycling

	f := newFixture(cleanup, recycling)

	got, err := f.engine.ListActivities(catalog.CatalogQuery{Category: "Cleanup"})
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, ids(got))

	// An unrecognized category is silently treated as no filter.
	unfiltered, err := f.engine.ListActivities(catalog.CatalogQuery{})
	require.NoError(t, err)
	garbage, err := f.engine.ListActivities(catalog.CatalogQuery{Category: "Skydiving"})
	require.NoError(t, err)
	assert.Equal(t, ids(unfiltered), ids(garbage))
}

func TestListActivitiesOfficialOnly(t *testing.T) {
	official := organizerActivity(1, testNow.Add(time.Hour))
	plain := activityAt(2, testNow.Add(2*time.Hour))
	noProfile := activityAt(3, testNow.Add(3*time.Hour))
	noProfile.Creator = models.User{} // no profile row at all
	officialPast := organizerActivity(4, testNow.Add(-time.Hour))
	plainPast := activityAt(5, testNow.Add(-2*time.Hour))

	f := newFixture(official, plain, noProfile, officialPast, plainPast)

	got, err := f.engine.ListActivities(catalog.CatalogQuery{OfficialOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, ids(got))

	// The restriction applies uniformly to the past window as well.
	got, err = f.engine.ListActivities(catalog.CatalogQuery{Window: "past", OfficialOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []uint{4}, ids(got))
}

func TestListActivitiesFiltersCompose(t *testing.T) {
	match := organizerActivity(1, testNow.Add(time.Hour))
	match.Title = "River cleanup"
	match.Category = models.CategoryCleanup
	wrongCategory := organizerActivity(2, testNow.Add(time.Hour))
	wrongCategory.Title = "River walk"
	wrongCategory.Category = models.CategoryAwareness
	unofficial := activityAt(3, testNow.Add(time.Hour))
	unofficial.Title = "River cleanup crew"
	unofficial.Category = models.CategoryCleanup

	f := newFixture(match, wrongCategory, unofficial)

	got, err := f.engine.ListActivities(catalog.CatalogQuery{
		Search:       "river",
		Category:     "Cleanup",
		OfficialOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, ids(got))
}

func TestFeaturedActivitiesPicksFourWithoutRepeats(t *testing.T) {
	var activities []models.Activity
	for i := uint(1); i <= 6; i++ {
		a := activityAt(i, testNow.Add(time.Duration(i)*time.Hour))
		a.IsFeatured = true
		activities = append(activities, a)
	}
	f := newFixture(activities...)

	got, err := f.engine.FeaturedActivities()
	require.NoError(t, err)
	require.Len(t, got, catalog.FeaturedLimit)

	seen := map[uint]bool{}
	for _, a := range got {
		assert.False(t, seen[a.ID], "activity %d picked twice", a.ID)
		seen[a.ID] = true
	}
}

func TestFeaturedActivitiesSmallCandidateSet(t *testing.T) {
	one := activityAt(1, testNow.Add(time.Hour))
	one.IsFeatured = true
	two := activityAt(2, testNow.Add(2*time.Hour))
	two.IsFeatured = true
	pastFeatured := activityAt(3, testNow.Add(-time.Hour))
	pastFeatured.IsFeatured = true

	f := newFixture(one, two, pastFeatured)

	got, err := f.engine.FeaturedActivities()
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2}, ids(got), "past activities never qualify as featured")
}

func TestFeaturedActivitiesFallsBackToSoonest(t *testing.T) {
	var activities []models.Activity
	for i := uint(1); i <= 6; i++ {
		activities = append(activities, activityAt(i, testNow.Add(time.Duration(i)*time.Hour)))
	}
	f := newFixture(activities...)

	got, err := f.engine.FeaturedActivities()
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(got), "no featured candidates: soonest four upcoming")
}
