package calendar

import "context"

// ClosureRepository persists the center's ad-hoc closure dates as a single
// document of ISO dates.
type ClosureRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, dates []string) error
}
