package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the persistence adapter over a pgx pool. Single-row creates run
// inside their own transaction so a failure rolls back only that row; the
// bulk variants use the COPY protocol inside one transaction, so a failure
// aborts the whole batch.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps a connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CreateRealtor inserts one realtor in a row-scoped transaction.
func (s *Store) CreateRealtor(ctx context.Context, p InsertRealtorParams) (int64, error) {
	return s.createOne(ctx, func(q *Queries) (int64, error) {
		return q.InsertRealtor(ctx, p)
	})
}

// CreateListing inserts one listing in a row-scoped transaction.
func (s *Store) CreateListing(ctx context.Context, p InsertListingParams) (int64, error) {
	return s.createOne(ctx, func(q *Queries) (int64, error) {
		return q.InsertListing(ctx, p)
	})
}

func (s *Store) createOne(ctx context.Context, insert func(*Queries) (int64, error)) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := insert(New(tx))
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

var realtorCopyColumns = []string{
	"name", "photo", "description", "phone", "email", "is_mvp", "hire_date",
}

var listingCopyColumns = []string{
	"realtor_id", "title", "address", "street", "district", "description",
	"price", "bedrooms", "bathrooms", "clubhouse", "sqft", "estate_size", "is_published",
	"photo_main", "photo_1", "photo_2", "photo_3", "photo_4", "photo_5", "photo_6", "list_date",
}

// CreateRealtors bulk-inserts realtors with COPY. Returns the number of rows
// written; COPY does not report generated ids.
func (s *Store) CreateRealtors(ctx context.Context, ps []InsertRealtorParams) (int64, error) {
	return s.copyAll(ctx, "realtors", realtorCopyColumns, len(ps), func(i int) []any {
		p := ps[i]
		return []any{p.Name, p.Photo, p.Description, p.Phone, p.Email, p.IsMvp, p.HireDate}
	})
}

// CreateListings bulk-inserts listings with COPY.
func (s *Store) CreateListings(ctx context.Context, ps []InsertListingParams) (int64, error) {
	return s.copyAll(ctx, "listings", listingCopyColumns, len(ps), func(i int) []any {
		p := ps[i]
		return []any{
			p.RealtorID, p.Title, p.Address, p.Street, p.District, p.Description,
			p.Price, p.Bedrooms, p.Bathrooms, p.Clubhouse, p.Sqft, p.EstateSize, p.IsPublished,
			p.PhotoMain, p.Photo1, p.Photo2, p.Photo3, p.Photo4, p.Photo5, p.Photo6, p.ListDate,
		}
	})
}

func (s *Store) copyAll(ctx context.Context, table string, columns []string, n int, row func(int) []any) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	count, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns,
		pgx.CopyFromSlice(n, func(i int) ([]any, error) {
			return row(i), nil
		}))
	if err != nil {
		return 0, fmt.Errorf("copy %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return count, nil
}

// ListRealtorIDs returns the set of persisted realtor ids.
func (s *Store) ListRealtorIDs(ctx context.Context) (map[int64]struct{}, error) {
	ids, err := New(s.pool).ListRealtorIDs(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// GetRealtor fetches one realtor by id.
func (s *Store) GetRealtor(ctx context.Context, id int64) (Realtor, error) {
	return New(s.pool).GetRealtor(ctx, id)
}

// Realtors returns all realtors.
func (s *Store) Realtors(ctx context.Context) ([]Realtor, error) {
	return New(s.pool).ListRealtors(ctx)
}

// Listings returns listings, optionally filtered.
func (s *Store) Listings(ctx context.Context, arg ListListingsParams) ([]Listing, error) {
	return New(s.pool).ListListings(ctx, arg)
}

// RecordImport writes the audit row for a finished run.
func (s *Store) RecordImport(ctx context.Context, arg InsertCsvImportParams) error {
	return New(s.pool).InsertCsvImport(ctx, arg)
}
