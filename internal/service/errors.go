package service

import "errors"

// Shared sentinel errors for the resource services. Handlers map these onto
// HTTP statuses with errors.Is; nothing downstream inspects error strings.
var (
	// ErrNotFound covers both a genuinely missing entity and an entity whose
	// existence must stay hidden from the viewer (pending/rejected content
	// read by an unauthenticated caller). A row that vanished between load
	// and save degrades to this too.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the viewer is authenticated, so the entity's
	// existence is knowable, but they lack the role or ownership to proceed.
	ErrForbidden = errors.New("forbidden")

	// Reference errors: a referenced parent does not exist. Always checked
	// before any ownership check.
	ErrRestaurantNotFound = errors.New("restaurant does not exist")
	ErrDishNotFound       = errors.New("dish does not exist")

	// Validation errors; reported immediately, no side effects.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrReviewTarget  = errors.New("exactly one of restaurant_id or dish_id is required")
	ErrInvalidStatus = errors.New("invalid moderation status")
)
