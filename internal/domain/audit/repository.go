package audit

import "context"

type Repository interface {
	Insert(ctx context.Context, actorID int, action, details string) error
	// List returns entries newest first.
	List(ctx context.Context, limit, offset int) ([]Entry, error)
}
