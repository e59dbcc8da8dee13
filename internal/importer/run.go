package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bcre/importer/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Runner drives import runs: it reads the source one record at a time and
// passes each row through coercion, validation, foreign-key resolution and
// persistence, in source order, with no parallelism.
type Runner struct {
	store Store
	sink  Sink
	opts  Options
}

// NewRunner creates a Runner. Zero-valued options fall back to the row
// strategy and the leave-unset date policy.
func NewRunner(store Store, sink Sink, opts Options) *Runner {
	if opts.Strategy == "" {
		opts.Strategy = StrategyRow
	}
	if opts.DatePolicy == "" {
		opts.DatePolicy = DateUnset
	}
	return &Runner{store: store, sink: sink, opts: opts}
}

type pendingRow struct {
	row    int
	params any
}

// Run imports the CSV at path as the given entity kind. The returned error
// is non-nil only for the fatal cases: an unknown kind, a source that
// cannot be opened or read, or a failed foreign-key snapshot. Every
// recoverable problem becomes a diagnostic and a skipped row.
func (r *Runner) Run(ctx context.Context, kind, path string) (*Result, error) {
	def, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q (valid: %s)", kind, strings.Join(Kinds(), ", "))
	}

	started := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	r.sink.Info(fmt.Sprintf("starting import for model %s from %s", def.Kind, path))

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &Result{Model: def.Kind, Source: path}

	header, err := reader.Read()
	if err == io.EOF {
		result.Duration = time.Since(started)
		r.sink.Info("source contains no rows")
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrSourceUnavailable, err)
	}
	idx := MakeHeaderIndex(header)

	// Foreign-key snapshot, taken once per run. Realtors created after
	// this point are not observed.
	var realtorIDs map[int64]struct{}
	if def.OwnerID != nil {
		realtorIDs, err = r.store.ListRealtorIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("load realtor ids: %w", err)
		}
	}

	var pending []pendingRow
	rowNum := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", ErrSourceUnavailable, err)
		}
		if isEmptyRow(row) {
			continue
		}
		rowNum++
		result.TotalRows++

		rec := CoerceRow(def.Fields, row, idx, rowNum, r.sink)

		if reasons := def.Validate(rec); len(reasons) > 0 {
			r.skip(result, rowNum, reasons)
			continue
		}

		if def.OwnerID != nil {
			id := def.OwnerID(rec)
			if _, ok := realtorIDs[id]; !ok {
				r.skip(result, rowNum, []string{fmt.Sprintf("invalid realtor_id: %d", id)})
				continue
			}
		}

		params := def.Build(rec, r.opts.DatePolicy)

		switch r.opts.Strategy {
		case StrategyBatch:
			pending = append(pending, pendingRow{row: rowNum, params: params})
		default:
			id, err := def.Insert(ctx, r.store, params)
			if err != nil {
				r.sink.Error(rowNum, fmt.Sprintf("insert failed: %v", err))
				result.Skipped = append(result.Skipped, SkippedRow{Row: rowNum, Reasons: []string{fmt.Sprintf("insert failed: %v", err)}})
				continue
			}
			result.Persisted++
			result.IDs = append(result.IDs, id)
		}
	}

	if r.opts.Strategy == StrategyBatch && len(pending) > 0 {
		batch := make([]any, len(pending))
		for i, p := range pending {
			batch[i] = p.params
		}
		n, err := def.InsertBatch(ctx, r.store, batch)
		if err != nil {
			// Batch granularity: one failure aborts the whole batch and
			// nothing from it counts as persisted.
			r.sink.Error(0, fmt.Sprintf("batch insert failed, 0 rows persisted: %v", err))
			for _, p := range pending {
				result.Skipped = append(result.Skipped, SkippedRow{Row: p.row, Reasons: []string{"batch insert failed"}})
			}
		} else {
			result.Persisted = int(n)
		}
	}

	result.Duration = time.Since(started)
	r.recordRun(ctx, result, started)

	r.sink.Info(fmt.Sprintf("import finished: model=%s total=%d persisted=%d skipped=%d",
		result.Model, result.TotalRows, result.Persisted, result.SkippedCount()))

	return result, nil
}

func (r *Runner) skip(result *Result, rowNum int, reasons []string) {
	r.sink.Warn(rowNum, strings.Join(reasons, ", "))
	result.Skipped = append(result.Skipped, SkippedRow{Row: rowNum, Reasons: reasons})
}

// recordRun writes the csv_imports audit row. Failures here are advisory
// and never affect the run's outcome.
func (r *Runner) recordRun(ctx context.Context, result *Result, started time.Time) {
	id := uuid.New()
	err := r.store.RecordImport(ctx, database.InsertCsvImportParams{
		ID:         pgtype.UUID{Bytes: id, Valid: true},
		Model:      result.Model,
		Source:     result.Source,
		TotalRows:  int32(result.TotalRows),
		Persisted:  int32(result.Persisted),
		Skipped:    int32(result.SkippedCount()),
		StartedAt:  pgtype.Timestamptz{Time: started, Valid: true},
		FinishedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})
	if err != nil {
		r.sink.Warn(0, fmt.Sprintf("record import run %s: %v", id, err))
	}
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// IsFatal reports whether err belongs to the one error class that aborts
// an entire run with a non-zero exit.
func IsFatal(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}
