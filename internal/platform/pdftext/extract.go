// Package pdftext extracts plain text from uploaded PDF documents.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// Result holds the text pulled out of a single document.
type Result struct {
	Text      string
	PageCount int
}

// Extractor converts raw PDF bytes into plain text.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (*Result, error)
}

type reader struct{}

// NewExtractor returns the default PDF extractor.
func NewExtractor() Extractor {
	return &reader{}
}

func (e *reader) Extract(ctx context.Context, data []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}

	var buf bytes.Buffer
	plain, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if _, err := io.Copy(&buf, plain); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	return &Result{
		Text:      buf.String(),
		PageCount: r.NumPage(),
	}, nil
}
