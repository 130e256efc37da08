package library

import "errors"

var (
	// ErrItemNotFound is returned when no item carries the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrActorNotFound is returned when no actor carries the requested id.
	ErrActorNotFound = errors.New("member not found")

	// ErrItemUnavailable is returned when every item with the id is checked out.
	ErrItemUnavailable = errors.New("item already checked out")

	// ErrItemNotHeld is returned by Checkin when the actor did not hold the item.
	ErrItemNotHeld = errors.New("item not held by member")

	// ErrDuplicateID is returned by the add operations of a strict catalog.
	ErrDuplicateID = errors.New("duplicate id")
)
