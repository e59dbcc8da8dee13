// Package importer implements the CSV import pipeline for realtors and
// listings: per-field coercion, row validation, foreign-key resolution,
// and transactional persistence. Bad rows are skipped with a diagnostic,
// never fatal; only an unreadable source aborts a run.
package importer

import (
	"context"
	"errors"
	"time"

	"github.com/bcre/importer/internal/database"
)

// ErrSourceUnavailable marks the one fatal failure class: the row source
// could not be opened or read. Everything else is a per-row diagnostic.
var ErrSourceUnavailable = errors.New("source unavailable")

// FieldKind is the coercion variant for a CSV column.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldBool
	FieldInt
	FieldDecimal
	FieldDate
)

// FieldSpec declares one expected CSV column and how to coerce it.
// Label is the display name used in diagnostics; it defaults to Name.
type FieldSpec struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
}

func (s FieldSpec) label() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// HeaderIndex maps lowercased column names to their position in a CSV row.
type HeaderIndex map[string]int

// Value is one coerced cell. Set reports whether the source provided a
// usable value; unset numeric fields read as their zero default.
type Value struct {
	Kind FieldKind
	Set  bool
	Text string
	Bool bool
	Int  int64
	Dec  float64
	Date time.Time
}

// Record is a fully coerced row keyed by field name.
type Record map[string]Value

// Strategy selects the persistence granularity.
type Strategy string

const (
	// StrategyRow wraps each accepted row in its own transaction; a
	// failed insert skips only that row.
	StrategyRow Strategy = "row"
	// StrategyBatch inserts all surviving rows with one COPY inside one
	// transaction; a failure aborts the whole batch.
	StrategyBatch Strategy = "batch"
)

// DatePolicy controls what happens when an optional date is absent or
// malformed.
type DatePolicy string

const (
	// DateUnset leaves the column NULL.
	DateUnset DatePolicy = "unset"
	// DateNow substitutes the current time.
	DateNow DatePolicy = "now"
)

// Options configures one import run.
type Options struct {
	Strategy   Strategy
	DatePolicy DatePolicy
}

// Store is the entity store the pipeline persists into. Implemented by
// database.Store; tests use an in-memory fake.
type Store interface {
	CreateRealtor(ctx context.Context, p database.InsertRealtorParams) (int64, error)
	CreateListing(ctx context.Context, p database.InsertListingParams) (int64, error)
	CreateRealtors(ctx context.Context, ps []database.InsertRealtorParams) (int64, error)
	CreateListings(ctx context.Context, ps []database.InsertListingParams) (int64, error)
	ListRealtorIDs(ctx context.Context) (map[int64]struct{}, error)
	GetRealtor(ctx context.Context, id int64) (database.Realtor, error)
	RecordImport(ctx context.Context, arg database.InsertCsvImportParams) error
}

// SkippedRow describes one row that was not persisted.
type SkippedRow struct {
	Row     int
	Reasons []string
}

// Result is the report for one import run.
type Result struct {
	Model     string
	Source    string
	TotalRows int
	Persisted int
	Skipped   []SkippedRow
	IDs       []int64
	Duration  time.Duration
}

// SkippedCount returns the number of rows that were not persisted.
func (r *Result) SkippedCount() int {
	return len(r.Skipped)
}
