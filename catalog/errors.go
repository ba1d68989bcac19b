package catalog

import "errors"

// Business-rule rejections. Controllers translate these into JSON responses;
// none of them is a fault condition.
var (
	// ErrNotFound is returned when a referenced activity does not exist.
	ErrNotFound = errors.New("activity not found")

	// ErrActivityPassed rejects register/cancel attempts on an activity whose
	// date is already behind us.
	ErrActivityPassed = errors.New("activity already passed")

	// ErrUploadNotAllowed is the single rejection for every failing media
	// upload combination: the caller must have registered and the event must
	// have passed.
	ErrUploadNotAllowed = errors.New("must have registered and the event must have passed")

	// ErrCommentRequired rejects ratings without comment text.
	ErrCommentRequired = errors.New("rating comment is required")

	// ErrInvalidStars rejects star values outside 1-5.
	ErrInvalidStars = errors.New("stars must be between 1 and 5")

	// ErrDuplicate is surfaced by stores when a unique (user, activity)
	// constraint fires on insert. The engine resolves it by updating the
	// winning row; it never reaches the HTTP layer.
	ErrDuplicate = errors.New("row already exists for this user and activity")
)
