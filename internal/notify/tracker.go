package notify

import (
	"context"
	"errors"
	"time"

	"github.com/therapia/opinions/internal/platform/db"
)

// TrackingStore persists when the daily emails last went out.
type TrackingStore interface {
	// LastSent returns the zero time when no email has ever been sent.
	LastSent(ctx context.Context) (time.Time, error)
	SetLastSent(ctx context.Context, at time.Time) error
}

const trackingDocument = "email_tracking"

type trackingDoc struct {
	LastEmailDate time.Time `json:"last_email_date"`
}

type docTracker struct {
	docs *db.Documents
}

// NewDocTracker returns a TrackingStore backed by the document store.
func NewDocTracker(docs *db.Documents) TrackingStore {
	return &docTracker{docs: docs}
}

func (t *docTracker) LastSent(ctx context.Context) (time.Time, error) {
	var doc trackingDoc
	err := t.docs.Load(ctx, trackingDocument, &doc)
	if errors.Is(err, db.ErrDocumentNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return doc.LastEmailDate, nil
}

func (t *docTracker) SetLastSent(ctx context.Context, at time.Time) error {
	return t.docs.Save(ctx, trackingDocument, trackingDoc{LastEmailDate: at})
}
