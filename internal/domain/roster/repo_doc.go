package roster

import (
	"context"
	"errors"

	"github.com/therapia/opinions/internal/platform/db"
)

const rosterDocument = "roster"

type docRepo struct {
	docs *db.Documents
}

// NewDocRepo returns a Repository backed by the document store.
func NewDocRepo(docs *db.Documents) Repository {
	return &docRepo{docs: docs}
}

func (r *docRepo) Load(ctx context.Context) (*Roster, error) {
	var roster Roster
	err := r.docs.Load(ctx, rosterDocument, &roster)
	if errors.Is(err, db.ErrDocumentNotFound) {
		return NewRoster(), nil
	}
	if err != nil {
		return nil, err
	}
	if roster.Week == nil {
		roster.Week = NewRoster().Week
	}
	for _, d := range Weekdays {
		if roster.Week[d] == nil {
			roster.Week[d] = []string{}
		}
	}
	return &roster, nil
}

func (r *docRepo) Save(ctx context.Context, roster *Roster) error {
	return r.docs.Save(ctx, rosterDocument, roster)
}
