package lifecycle

import "errors"

var (
	// ErrEmptySelection is returned when a batch action has nothing selected.
	ErrEmptySelection = errors.New("select at least one order first")
	// ErrLocationRequired is returned when an action needs a location and none is chosen.
	ErrLocationRequired = errors.New("choose a location first")
	// ErrPersonRequired is returned when an action needs a staff member and none is resolved.
	ErrPersonRequired = errors.New("choose a staff member at the selected location first")
	// ErrInvalidTarget is returned for a status the action cannot move orders to.
	ErrInvalidTarget = errors.New("invalid target status")
	// ErrSubmissionInFlight is returned while a previous submission has not been answered yet.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)
