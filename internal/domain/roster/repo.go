package roster

import "context"

// Repository persists the roster as a single document. Load on an empty
// store returns a fresh roster, never an error.
type Repository interface {
	Load(ctx context.Context) (*Roster, error)
	Save(ctx context.Context, r *Roster) error
}
