package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDocumentNotFound is returned by Documents.Load when no row exists for
// the requested name.
var ErrDocumentNotFound = errors.New("document not found")

// Documents stores named JSON documents as single jsonb rows. Configuration
// state (weekly roster, closure dates, email tracking) round-trips as whole
// documents: load, mutate in memory, replace. There are no partial updates.
type Documents struct {
	pool *pgxpool.Pool
}

func NewDocuments(pool *pgxpool.Pool) *Documents {
	return &Documents{pool: pool}
}

// Load unmarshals the named document into v.
func (d *Documents) Load(ctx context.Context, name string, v interface{}) error {
	var body []byte
	err := d.pool.QueryRow(ctx,
		`SELECT body FROM app_documents WHERE name = $1`, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrDocumentNotFound
	}
	if err != nil {
		return fmt.Errorf("load document %s: %w", name, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode document %s: %w", name, err)
	}
	return nil
}

// Save replaces the named document with the JSON encoding of v, creating the
// row if it does not exist.
func (d *Documents) Save(ctx context.Context, name string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", name, err)
	}
	_, err = d.pool.Exec(ctx, `
		INSERT INTO app_documents (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`,
		name, body)
	if err != nil {
		return fmt.Errorf("save document %s: %w", name, err)
	}
	return nil
}
