package opinion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AMKA resolution statuses.
const (
	AmkaMatch        = "match"         // both present and equal
	AmkaConflict     = "conflict"      // both present and different
	AmkaDocumentOnly = "document-only" // only the document carries one
	AmkaStoredOnly   = "stored-only"   // only the record carries one
	AmkaNone         = "none"          // neither side has one
)

// AMKA resolution choices.
const (
	ChooseDocument = "document"
	ChooseStored   = "stored"
)

// AmkaResolution is the outcome of weighing a document AMKA against the
// one on file.
type AmkaResolution struct {
	Status        string `json:"status"`
	DocumentAMKA  string `json:"document_amka,omitempty"`
	StoredAMKA    string `json:"stored_amka,omitempty"`
	EffectiveAMKA string `json:"effective_amka,omitempty"`
	Updated       bool   `json:"updated"`
}

// CompareAMKA classifies a document AMKA against the record's stored one.
// Only an exact string mismatch of two non-empty values is a conflict.
func CompareAMKA(documentAMKA, storedAMKA string) string {
	switch {
	case documentAMKA == "" && storedAMKA == "":
		return AmkaNone
	case documentAMKA == "":
		return AmkaStoredOnly
	case storedAMKA == "":
		return AmkaDocumentOnly
	case documentAMKA == storedAMKA:
		return AmkaMatch
	}
	return AmkaConflict
}

// ResolveAMKA applies a choice between a document AMKA and the stored one.
// Choosing the document value with persist set rewrites the record; the
// stored value is never modified otherwise.
func (s *Service) ResolveAMKA(ctx context.Context, id uuid.UUID, documentAMKA, choice string, persist bool) (*AmkaResolution, error) {
	o, err := s.opinions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &AmkaResolution{
		Status:       CompareAMKA(documentAMKA, o.ChildAMKA),
		DocumentAMKA: documentAMKA,
		StoredAMKA:   o.ChildAMKA,
	}

	switch choice {
	case ChooseStored:
		res.EffectiveAMKA = o.ChildAMKA
	case ChooseDocument:
		res.EffectiveAMKA = documentAMKA
		if persist && documentAMKA != "" && documentAMKA != o.ChildAMKA {
			o.ChildAMKA = documentAMKA
			if err := s.opinions.Update(ctx, o); err != nil {
				return nil, err
			}
			res.StoredAMKA = documentAMKA
			res.Updated = true
		}
	default:
		return nil, fmt.Errorf("invalid choice %q", choice)
	}
	return res, nil
}
