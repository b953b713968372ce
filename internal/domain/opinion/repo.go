package opinion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("opinion not found")

type Repository interface {
	Create(ctx context.Context, o *Opinion) error
	GetByID(ctx context.Context, id uuid.UUID) (*Opinion, error)
	GetByChildAMKA(ctx context.Context, amka string) (*Opinion, error)
	Update(ctx context.Context, o *Opinion) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Opinion, int, error)
	ListExpiringBy(ctx context.Context, cutoff time.Time) ([]*Opinion, error)
}
