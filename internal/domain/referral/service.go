package referral

import (
	"context"
	"fmt"

	"github.com/therapia/opinions/internal/platform/pdftext"
)

// Identity match statuses reported alongside an extraction.
const (
	MatchUnknown  = "unknown"  // document carried no identity block
	MatchNew      = "new"      // no stored record for the AMKA
	MatchOK       = "match"    // stored name equals the document name
	MatchConflict = "conflict" // both names present and different
)

// StoredNameLookup resolves the name on file for an AMKA, if any.
type StoredNameLookup interface {
	NameForAMKA(ctx context.Context, amka string) (string, bool, error)
}

// IdentityMatch describes how a document's identity relates to the records.
type IdentityMatch struct {
	Status     string `json:"status"`
	StoredName string `json:"stored_name,omitempty"`
}

// ExtractResult is the full response for one uploaded document.
type ExtractResult struct {
	*Extraction
	PageCount int           `json:"page_count"`
	Match     IdentityMatch `json:"match"`
}

type Service struct {
	extractor pdftext.Extractor
	lookup    StoredNameLookup
}

func NewService(extractor pdftext.Extractor, lookup StoredNameLookup) *Service {
	return &Service{extractor: extractor, lookup: lookup}
}

// ExtractFromPDF converts a PDF to text, parses it and checks the document
// identity against the stored records.
func (s *Service) ExtractFromPDF(ctx context.Context, data []byte) (*ExtractResult, error) {
	doc, err := s.extractor.Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("extract document: %w", err)
	}

	res := &ExtractResult{
		Extraction: Parse(doc.Text),
		PageCount:  doc.PageCount,
		Match:      IdentityMatch{Status: MatchUnknown},
	}

	if res.Identity == nil || res.Identity.AMKA == "" {
		return res, nil
	}

	stored, found, err := s.lookup.NameForAMKA(ctx, res.Identity.AMKA)
	if err != nil {
		return nil, fmt.Errorf("lookup amka: %w", err)
	}
	switch {
	case !found:
		res.Match.Status = MatchNew
	case stored != "" && res.Identity.Name != "" && stored != res.Identity.Name:
		res.Match = IdentityMatch{Status: MatchConflict, StoredName: stored}
	default:
		res.Match = IdentityMatch{Status: MatchOK, StoredName: stored}
	}
	return res, nil
}
