package decision

import (
	"context"
	"errors"
)

var (
	// ErrUnauthenticated is returned when an operation that needs a session
	// category is called without one.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidInput is returned when a request field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when the target decision does not exist or was
	// not modified.
	ErrNotFound = errors.New("decision not found")

	// ErrStoreUnavailable wraps any failure of the persistence backend.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Repository defines the interface for decision storage. It applies no
// authorization beyond the category filter it is given; callers are trusted
// to have been authorized already.
//
// The three edit operations intentionally differ in result shape: EditText
// returns the updated record (nil when no match), EditOutcome returns a
// modified count, and EditSuccess re-reads and returns the record only when
// the update changed something.
type Repository interface {
	List(ctx context.Context, category string) ([]*Decision, error)
	Create(ctx context.Context, d *Decision) error
	Delete(ctx context.Context, id string) (int64, error)
	EditText(ctx context.Context, id, text string) (*Decision, error)
	EditOutcome(ctx context.Context, id, outcome string, success *bool) (int64, error)
	EditSuccess(ctx context.Context, id string, success bool) (*Decision, error)
}
