package database

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Realtor is a row in the realtors table.
type Realtor struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Photo       pgtype.Text        `json:"photo"`
	Description pgtype.Text        `json:"description"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	IsMvp       bool               `json:"is_mvp"`
	HireDate    pgtype.Timestamptz `json:"hire_date"`
}

// Listing is a row in the listings table. The realtor_id column carries a
// foreign key to realtors(id) and is never null.
type Listing struct {
	ID          int64              `json:"id"`
	RealtorID   int64              `json:"realtor_id"`
	Title       string             `json:"title"`
	Address     pgtype.Text        `json:"address"`
	Street      pgtype.Text        `json:"street"`
	District    pgtype.Text        `json:"district"`
	Description pgtype.Text        `json:"description"`
	Price       int64              `json:"price"`
	Bedrooms    int32              `json:"bedrooms"`
	Bathrooms   float64            `json:"bathrooms"`
	Clubhouse   int32              `json:"clubhouse"`
	Sqft        int32              `json:"sqft"`
	EstateSize  float64            `json:"estate_size"`
	IsPublished bool               `json:"is_published"`
	PhotoMain   pgtype.Text        `json:"photo_main"`
	Photo1      pgtype.Text        `json:"photo_1"`
	Photo2      pgtype.Text        `json:"photo_2"`
	Photo3      pgtype.Text        `json:"photo_3"`
	Photo4      pgtype.Text        `json:"photo_4"`
	Photo5      pgtype.Text        `json:"photo_5"`
	Photo6      pgtype.Text        `json:"photo_6"`
	ListDate    pgtype.Timestamptz `json:"list_date"`
}

// CsvImport records one completed import run for audit purposes.
type CsvImport struct {
	ID         pgtype.UUID        `json:"id"`
	Model      string             `json:"model"`
	Source     string             `json:"source"`
	TotalRows  int32              `json:"total_rows"`
	Persisted  int32              `json:"persisted"`
	Skipped    int32              `json:"skipped"`
	StartedAt  pgtype.Timestamptz `json:"started_at"`
	FinishedAt pgtype.Timestamptz `json:"finished_at"`
}
