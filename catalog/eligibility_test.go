package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/models"
)

const (
	upcomingID = 1
	pastID     = 2
	userID     = 10
)

func eligibilityFixture() *fixture {
	return newFixture(
		activityAt(upcomingID, testNow.Add(24*time.Hour)),
		activityAt(pastID, testNow.Add(-24*time.Hour)),
	)
}

func TestRegisterCreatesJoinedRow(t *testing.T) {
	f := eligibilityFixture()

	reg, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationJoined, reg.Status)

	joined, err := f.engine.IsRegistered(upcomingID, userID)
	require.NoError(t, err)
	assert.True(t, joined)
}

func TestRegisterIsIdempotent(t *testing.T) {
	f := eligibilityFixture()

	first, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)
	second, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.registrations.rows, 1, "repeated register never creates a second row")
}

func TestRegisterRevivesCancelledRow(t *testing.T) {
	f := eligibilityFixture()

	reg, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)
	require.NoError(t, f.engine.Cancel(upcomingID, userID))

	revived, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, revived.ID, "re-join flips the existing row")
	assert.Equal(t, models.RegistrationJoined, revived.Status)
	assert.Len(t, f.registrations.rows, 1)
}

func TestRegisterRejectsPastActivity(t *testing.T) {
	f := eligibilityFixture()

	_, err := f.engine.Register(pastID, userID)
	assert.ErrorIs(t, err, catalog.ErrActivityPassed)
	assert.Empty(t, f.registrations.rows)
}

func TestRegisterUnknownActivity(t *testing.T) {
	f := eligibilityFixture()

	_, err := f.engine.Register(99, userID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRegisterLosesCreateRace(t *testing.T) {
	f := eligibilityFixture()

	// A concurrent request inserts the pair between our Find and Create; the
	// unique index fires and the engine must fall back to the winner's row.
	f.registrations.raceWinner = &models.Registration{
		ActivityID: upcomingID,
		UserID:     userID,
		Status:     models.RegistrationJoined,
	}

	reg, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationJoined, reg.Status)
	assert.Len(t, f.registrations.rows, 1, "exactly one row survives the race")
}

func TestCancelWithoutRowIsSilent(t *testing.T) {
	f := eligibilityFixture()

	assert.NoError(t, f.engine.Cancel(upcomingID, userID))
	assert.Empty(t, f.registrations.rows, "no row is created by a cancel")
}

func TestCancelKeepsRowWithCancelledStatus(t *testing.T) {
	f := eligibilityFixture()

	_, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)
	require.NoError(t, f.engine.Cancel(upcomingID, userID))

	require.Len(t, f.registrations.rows, 1, "history is preserved, never deleted")
	assert.Equal(t, models.RegistrationCancelled, f.registrations.rows[0].Status)

	joined, err := f.engine.IsRegistered(upcomingID, userID)
	require.NoError(t, err)
	assert.False(t, joined)
}

func TestCancelRejectsPastActivity(t *testing.T) {
	f := eligibilityFixture()

	err := f.engine.Cancel(pastID, userID)
	assert.ErrorIs(t, err, catalog.ErrActivityPassed)
}

func TestParticipantCountCountsJoinedOnly(t *testing.T) {
	f := eligibilityFixture()

	for _, uid := range []uint{10, 11, 12} {
		_, err := f.engine.Register(upcomingID, uid)
		require.NoError(t, err)
	}
	require.NoError(t, f.engine.Cancel(upcomingID, 12))

	count, err := f.engine.ParticipantCount(upcomingID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCanUploadMediaRequiresPastAndJoined(t *testing.T) {
	tests := []struct {
		name       string
		activityID uint
		registered bool
		allowed    bool
	}{
		{"passed and registered", pastID, true, true},
		{"not passed but registered", upcomingID, true, false},
		{"passed but not registered", pastID, false, false},
		{"neither", upcomingID, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := eligibilityFixture()
			if tt.registered {
				// Seed directly: registering through the engine would be
				// rejected for the past activity.
				f.registrations.rows = append(f.registrations.rows, &models.Registration{
					ID:         1,
					ActivityID: tt.activityID,
					UserID:     userID,
					Status:     models.RegistrationJoined,
				})
			}

			err := f.engine.CanUploadMedia(tt.activityID, userID)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, catalog.ErrUploadNotAllowed)
			}
		})
	}
}

func TestViewerStatus(t *testing.T) {
	f := eligibilityFixture()
	_, err := f.engine.Register(upcomingID, userID)
	require.NoError(t, err)

	upcoming, _ := f.activities.Get(upcomingID)
	past, _ := f.activities.Get(pastID)

	status, err := f.engine.ViewerStatus(past, userID)
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusPast, status)

	status, err = f.engine.ViewerStatus(upcoming, userID)
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusJoined, status)

	status, err = f.engine.ViewerStatus(upcoming, 0)
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusOpen, status)

	status, err = f.engine.ViewerStatus(upcoming, 99)
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusOpen, status)
}

func TestCanManage(t *testing.T) {
	a := activityAt(1, testNow)
	a.CreatedBy = userID
	f := eligibilityFixture()

	assert.True(t, f.engine.CanManage(&a, userID, "user"))
	assert.True(t, f.engine.CanManage(&a, 99, "staff"))
	assert.False(t, f.engine.CanManage(&a, 99, "user"))
}
