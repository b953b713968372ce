package calendar

import (
	"context"
	"errors"

	"github.com/therapia/opinions/internal/platform/db"
)

const closuresDocument = "calendar_closures"

type docClosureRepo struct {
	docs *db.Documents
}

// NewDocClosureRepo returns a ClosureRepository backed by the document store.
func NewDocClosureRepo(docs *db.Documents) ClosureRepository {
	return &docClosureRepo{docs: docs}
}

func (r *docClosureRepo) Load(ctx context.Context) ([]string, error) {
	var dates []string
	err := r.docs.Load(ctx, closuresDocument, &dates)
	if errors.Is(err, db.ErrDocumentNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *docClosureRepo) Save(ctx context.Context, dates []string) error {
	return r.docs.Save(ctx, closuresDocument, dates)
}
