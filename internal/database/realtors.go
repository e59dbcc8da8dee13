package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertRealtor = `
INSERT INTO realtors (name, photo, description, phone, email, is_mvp, hire_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

// InsertRealtorParams holds the column values for one realtor insert.
type InsertRealtorParams struct {
	Name        string
	Photo       pgtype.Text
	Description pgtype.Text
	Phone       string
	Email       string
	IsMvp       bool
	HireDate    pgtype.Timestamptz
}

// InsertRealtor inserts one realtor and returns the generated id.
func (q *Queries) InsertRealtor(ctx context.Context, arg InsertRealtorParams) (int64, error) {
	row := q.db.QueryRow(ctx, insertRealtor,
		arg.Name,
		arg.Photo,
		arg.Description,
		arg.Phone,
		arg.Email,
		arg.IsMvp,
		arg.HireDate,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getRealtor = `
SELECT id, name, photo, description, phone, email, is_mvp, hire_date
FROM realtors
WHERE id = $1
`

// GetRealtor fetches a single realtor by id.
func (q *Queries) GetRealtor(ctx context.Context, id int64) (Realtor, error) {
	row := q.db.QueryRow(ctx, getRealtor, id)
	var r Realtor
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Photo,
		&r.Description,
		&r.Phone,
		&r.Email,
		&r.IsMvp,
		&r.HireDate,
	)
	return r, err
}

const listRealtorIDs = `
SELECT id FROM realtors
`

// ListRealtorIDs returns the ids of all persisted realtors.
func (q *Queries) ListRealtorIDs(ctx context.Context) ([]int64, error) {
	rows, err := q.db.Query(ctx, listRealtorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const listRealtors = `
SELECT id, name, photo, description, phone, email, is_mvp, hire_date
FROM realtors
ORDER BY id
`

// ListRealtors returns all realtors ordered by id.
func (q *Queries) ListRealtors(ctx context.Context) ([]Realtor, error) {
	rows, err := q.db.Query(ctx, listRealtors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Realtor
	for rows.Next() {
		var r Realtor
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Photo,
			&r.Description,
			&r.Phone,
			&r.Email,
			&r.IsMvp,
			&r.HireDate,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
