package opinion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type opinionRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &opinionRepoPG{pool: pool}
}

const opCols = `id, first_name, last_name, start_date, end_date,
	child_amka, parent_amka, phone, opinion_code, opinion_value,
	taxis_username, taxis_password,
	logo, ergo, psycho, mp, eid, comments,
	created_at, updated_at`

func scanRow(row pgx.Row) (*Opinion, error) {
	var o Opinion
	err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.StartDate, &o.EndDate,
		&o.ChildAMKA, &o.ParentAMKA, &o.Phone, &o.OpinionCode, &o.OpinionValue,
		&o.TaxisUsername, &o.TaxisPassword,
		&o.Logo, &o.Ergo, &o.Psycho, &o.MP, &o.Eid, &o.Comments,
		&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &o, err
}

func (r *opinionRepoPG) Create(ctx context.Context, o *Opinion) error {
	o.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO opinions (id, first_name, last_name, start_date, end_date,
			child_amka, parent_amka, phone, opinion_code, opinion_value,
			taxis_username, taxis_password,
			logo, ergo, psycho, mp, eid, comments)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING created_at, updated_at`,
		o.ID, o.FirstName, o.LastName, o.StartDate, o.EndDate,
		o.ChildAMKA, o.ParentAMKA, o.Phone, o.OpinionCode, o.OpinionValue,
		o.TaxisUsername, o.TaxisPassword,
		o.Logo, o.Ergo, o.Psycho, o.MP, o.Eid, o.Comments).
		Scan(&o.CreatedAt, &o.UpdatedAt)
}

func (r *opinionRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Opinion, error) {
	return scanRow(r.pool.QueryRow(ctx, `SELECT `+opCols+` FROM opinions WHERE id = $1`, id))
}

func (r *opinionRepoPG) GetByChildAMKA(ctx context.Context, amka string) (*Opinion, error) {
	return scanRow(r.pool.QueryRow(ctx,
		`SELECT `+opCols+` FROM opinions WHERE child_amka = $1 ORDER BY end_date DESC LIMIT 1`, amka))
}

func (r *opinionRepoPG) Update(ctx context.Context, o *Opinion) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE opinions SET first_name=$2, last_name=$3, start_date=$4, end_date=$5,
			child_amka=$6, parent_amka=$7, phone=$8, opinion_code=$9, opinion_value=$10,
			taxis_username=$11, taxis_password=$12,
			logo=$13, ergo=$14, psycho=$15, mp=$16, eid=$17, comments=$18,
			updated_at=NOW()
		WHERE id = $1`,
		o.ID, o.FirstName, o.LastName, o.StartDate, o.EndDate,
		o.ChildAMKA, o.ParentAMKA, o.Phone, o.OpinionCode, o.OpinionValue,
		o.TaxisUsername, o.TaxisPassword,
		o.Logo, o.Ergo, o.Psycho, o.MP, o.Eid, o.Comments)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *opinionRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM opinions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *opinionRepoPG) List(ctx context.Context, limit, offset int) ([]*Opinion, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM opinions`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+opCols+` FROM opinions ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Opinion
	for rows.Next() {
		o, err := scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, o)
	}
	return items, total, rows.Err()
}

func (r *opinionRepoPG) ListExpiringBy(ctx context.Context, cutoff time.Time) ([]*Opinion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+opCols+` FROM opinions WHERE end_date <= $1 ORDER BY end_date`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Opinion
	for rows.Next() {
		o, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}
