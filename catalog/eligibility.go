package catalog

import (
	"errors"

	"github.com/eco-connect/api-go/models"
)

// Viewer status values reported on the activity detail view.
const (
	StatusOpen   = "open"   // upcoming, viewer not joined
	StatusJoined = "joined" // viewer has an active registration
	StatusPast   = "past"   // the date is behind us
)

// Register joins userID to the activity. Absent row: a joined row is created.
// Cancelled row: flipped back to joined. Already joined: success no-op. The
// insert/update race on the unique pair index is resolved by retrying the
// loser as an update.
func (e *Engine) Register(activityID, userID uint) (*models.Registration, error) {
	activity, err := e.Activities.Get(activityID)
	if err != nil {
		return nil, err
	}
	if activity.IsPast(e.Now()) {
		return nil, ErrActivityPassed
	}

	reg, err := e.Registrations.Find(activityID, userID)
	switch {
	case err == nil:
		if reg.Status != models.RegistrationJoined {
			if err := e.Registrations.SetStatus(reg.ID, models.RegistrationJoined); err != nil {
				return nil, err
			}
			reg.Status = models.RegistrationJoined
		}
		return reg, nil
	case errors.Is(err, ErrNotFound):
		reg = &models.Registration{
			ActivityID: activityID,
			UserID:     userID,
			Status:     models.RegistrationJoined,
		}
		if err := e.Registrations.Create(reg); err != nil {
			if errors.Is(err, ErrDuplicate) {
				// Lost the create race: another request inserted the row first.
				return e.rejoin(activityID, userID)
			}
			return nil, err
		}
		return reg, nil
	default:
		return nil, err
	}
}

func (e *Engine) rejoin(activityID, userID uint) (*models.Registration, error) {
	reg, err := e.Registrations.Find(activityID, userID)
	if err != nil {
		return nil, err
	}
	if reg.Status != models.RegistrationJoined {
		if err := e.Registrations.SetStatus(reg.ID, models.RegistrationJoined); err != nil {
			return nil, err
		}
		reg.Status = models.RegistrationJoined
	}
	return reg, nil
}

// Cancel withdraws userID from the activity. The row is kept with status
// cancelled so the history survives; cancelling with no row at all is a
// silent no-op.
func (e *Engine) Cancel(activityID, userID uint) error {
	activity, err := e.Activities.Get(activityID)
	if err != nil {
		return err
	}
	if activity.IsPast(e.Now()) {
		return ErrActivityPassed
	}

	reg, err := e.Registrations.Find(activityID, userID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if reg.Status == models.RegistrationCancelled {
		return nil
	}
	return e.Registrations.SetStatus(reg.ID, models.RegistrationCancelled)
}

// IsRegistered reports whether userID currently holds a joined registration.
func (e *Engine) IsRegistered(activityID, userID uint) (bool, error) {
	reg, err := e.Registrations.Find(activityID, userID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return reg.Status == models.RegistrationJoined, nil
}

// ParticipantCount is the number of joined registrations for the activity.
func (e *Engine) ParticipantCount(activityID uint) (int64, error) {
	return e.Registrations.CountJoined(activityID)
}

// History returns the user's registrations, most recent first per store order.
func (e *Engine) History(userID uint) ([]models.Registration, error) {
	return e.Registrations.ListForUser(userID)
}

// CanUploadMedia gates post-event uploads: the event must have passed AND the
// requester must hold a joined registration. Every failing combination gets
// the same ErrUploadNotAllowed, deliberately not distinguishing which leg
// failed.
func (e *Engine) CanUploadMedia(activityID, userID uint) error {
	activity, err := e.Activities.Get(activityID)
	if err != nil {
		return err
	}
	if !activity.IsPast(e.Now()) {
		return ErrUploadNotAllowed
	}
	joined, err := e.IsRegistered(activityID, userID)
	if err != nil {
		return err
	}
	if !joined {
		return ErrUploadNotAllowed
	}
	return nil
}

// CanManage reports whether the user may mutate the activity: its creator or
// any staff account.
func (e *Engine) CanManage(activity *models.Activity, userID uint, role string) bool {
	return activity.CreatedBy == userID || role == "staff"
}

// ViewerStatus computes the detail-page state for an optional viewer. Pass
// userID 0 for anonymous visitors.
func (e *Engine) ViewerStatus(activity *models.Activity, userID uint) (string, error) {
	if activity.IsPast(e.Now()) {
		return StatusPast, nil
	}
	if userID == 0 {
		return StatusOpen, nil
	}
	joined, err := e.IsRegistered(activity.ID, userID)
	if err != nil {
		return "", err
	}
	if joined {
		return StatusJoined, nil
	}
	return StatusOpen, nil
}
