package model

import "context"

// Usage is the result of a quota check for one user.
type Usage struct {
	Used      int
	Remaining int
	Total     int
}

// CanProceed reports whether the user still has quota left.
func (u Usage) CanProceed() bool {
	return u.Remaining > 0
}

// UsageRepository tracks how many quota-limited operations each user has
// consumed. Counts survive restarts; callers increment only after the gated
// operation has succeeded, so failures never charge the user.
type UsageRepository interface {
	// Load reads the persisted counts. A missing storage resource is not an
	// error; the repository starts empty.
	Load(ctx context.Context) error

	// Check returns the current usage for the user. Pure read.
	Check(ctx context.Context, userID string) (Usage, error)

	// Increment bumps the user's count by one and persists immediately.
	// The count is not clamped at the ceiling; only Remaining is floored at 0.
	Increment(ctx context.Context, userID string) error
}
