package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertCsvImport = `
INSERT INTO csv_imports (id, model, source, total_rows, persisted, skipped, started_at, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// InsertCsvImportParams records the outcome of one import run.
type InsertCsvImportParams struct {
	ID         pgtype.UUID
	Model      string
	Source     string
	TotalRows  int32
	Persisted  int32
	Skipped    int32
	StartedAt  pgtype.Timestamptz
	FinishedAt pgtype.Timestamptz
}

// InsertCsvImport writes the audit row for a finished import run.
func (q *Queries) InsertCsvImport(ctx context.Context, arg InsertCsvImportParams) error {
	_, err := q.db.Exec(ctx, insertCsvImport,
		arg.ID,
		arg.Model,
		arg.Source,
		arg.TotalRows,
		arg.Persisted,
		arg.Skipped,
		arg.StartedAt,
		arg.FinishedAt,
	)
	return err
}
