package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertListing = `
INSERT INTO listings (
	realtor_id, title, address, street, district, description,
	price, bedrooms, bathrooms, clubhouse, sqft, estate_size, is_published,
	photo_main, photo_1, photo_2, photo_3, photo_4, photo_5, photo_6, list_date
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
RETURNING id
`

// InsertListingParams holds the column values for one listing insert.
type InsertListingParams struct {
	RealtorID   int64
	Title       string
	Address     pgtype.Text
	Street      pgtype.Text
	District    pgtype.Text
	Description pgtype.Text
	Price       int64
	Bedrooms    int32
	Bathrooms   float64
	Clubhouse   int32
	Sqft        int32
	EstateSize  float64
	IsPublished bool
	PhotoMain   pgtype.Text
	Photo1      pgtype.Text
	Photo2      pgtype.Text
	Photo3      pgtype.Text
	Photo4      pgtype.Text
	Photo5      pgtype.Text
	Photo6      pgtype.Text
	ListDate    pgtype.Timestamptz
}

// InsertListing inserts one listing and returns the generated id.
func (q *Queries) InsertListing(ctx context.Context, arg InsertListingParams) (int64, error) {
	row := q.db.QueryRow(ctx, insertListing,
		arg.RealtorID,
		arg.Title,
		arg.Address,
		arg.Street,
		arg.District,
		arg.Description,
		arg.Price,
		arg.Bedrooms,
		arg.Bathrooms,
		arg.Clubhouse,
		arg.Sqft,
		arg.EstateSize,
		arg.IsPublished,
		arg.PhotoMain,
		arg.Photo1,
		arg.Photo2,
		arg.Photo3,
		arg.Photo4,
		arg.Photo5,
		arg.Photo6,
		arg.ListDate,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listListings = `
SELECT id, realtor_id, title, address, street, district, description,
	price, bedrooms, bathrooms, clubhouse, sqft, estate_size, is_published,
	photo_main, photo_1, photo_2, photo_3, photo_4, photo_5, photo_6, list_date
FROM listings
WHERE ($1::text IS NULL OR district = $1)
  AND ($2::bigint IS NULL OR realtor_id = $2)
ORDER BY id
`

// ListListingsParams filters the listing query. Invalid (null) members
// disable the corresponding filter.
type ListListingsParams struct {
	District  pgtype.Text
	RealtorID pgtype.Int8
}

// ListListings returns listings ordered by id, optionally filtered by
// district and owning realtor.
func (q *Queries) ListListings(ctx context.Context, arg ListListingsParams) ([]Listing, error) {
	rows, err := q.db.Query(ctx, listListings, arg.District, arg.RealtorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(
			&l.ID,
			&l.RealtorID,
			&l.Title,
			&l.Address,
			&l.Street,
			&l.District,
			&l.Description,
			&l.Price,
			&l.Bedrooms,
			&l.Bathrooms,
			&l.Clubhouse,
			&l.Sqft,
			&l.EstateSize,
			&l.IsPublished,
			&l.PhotoMain,
			&l.Photo1,
			&l.Photo2,
			&l.Photo3,
			&l.Photo4,
			&l.Photo5,
			&l.Photo6,
			&l.ListDate,
		); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
