package importer

import (
	"context"
	"time"

	"github.com/bcre/importer/internal/database"
	"github.com/jackc/pgx/v5/pgtype"
)

func init() {
	Register(realtorDefinition())
	Register(listingDefinition())
}

var realtorFields = []FieldSpec{
	{Name: "name", Label: "Name", Kind: FieldText, Required: true},
	{Name: "photo", Kind: FieldText},
	{Name: "description", Kind: FieldText},
	{Name: "phone", Label: "Phone", Kind: FieldText, Required: true},
	{Name: "email", Label: "Email", Kind: FieldText, Required: true},
	{Name: "is_mvp", Kind: FieldBool},
	{Name: "hire_date", Kind: FieldDate},
}

var listingFields = []FieldSpec{
	{Name: "realtor_id", Label: "Realtor ID", Kind: FieldInt, Required: true},
	{Name: "title", Label: "Title", Kind: FieldText, Required: true},
	{Name: "address", Kind: FieldText},
	{Name: "street", Kind: FieldText},
	{Name: "district", Kind: FieldText},
	{Name: "description", Kind: FieldText},
	{Name: "price", Label: "Price", Kind: FieldInt, Required: true},
	{Name: "bedrooms", Kind: FieldInt},
	{Name: "bathrooms", Kind: FieldDecimal},
	{Name: "clubhouse", Kind: FieldInt},
	{Name: "sqft", Kind: FieldInt},
	{Name: "estate_size", Kind: FieldDecimal},
	{Name: "is_published", Kind: FieldBool},
	{Name: "photo_main", Kind: FieldText},
	{Name: "photo_1", Kind: FieldText},
	{Name: "photo_2", Kind: FieldText},
	{Name: "photo_3", Kind: FieldText},
	{Name: "photo_4", Kind: FieldText},
	{Name: "photo_5", Kind: FieldText},
	{Name: "photo_6", Kind: FieldText},
	{Name: "list_date", Kind: FieldDate},
}

func realtorDefinition() Definition {
	return Definition{
		Kind:    "realtor",
		Label:   "Realtor",
		Aliases: []string{"agent"},
		Fields:  realtorFields,
		Validate: func(rec Record) []string {
			return requiredReasons(realtorFields, rec)
		},
		Build: func(rec Record, policy DatePolicy) any {
			return database.InsertRealtorParams{
				Name:        rec["name"].Text,
				Photo:       toText(rec["photo"]),
				Description: toText(rec["description"]),
				Phone:       rec["phone"].Text,
				Email:       rec["email"].Text,
				IsMvp:       rec["is_mvp"].Bool,
				HireDate:    toTimestamp(rec["hire_date"], policy),
			}
		},
		Insert: func(ctx context.Context, store Store, params any) (int64, error) {
			return store.CreateRealtor(ctx, params.(database.InsertRealtorParams))
		},
		InsertBatch: func(ctx context.Context, store Store, batch []any) (int64, error) {
			ps := make([]database.InsertRealtorParams, len(batch))
			for i, p := range batch {
				ps[i] = p.(database.InsertRealtorParams)
			}
			return store.CreateRealtors(ctx, ps)
		},
	}
}

func listingDefinition() Definition {
	return Definition{
		Kind:   "listing",
		Label:  "Listing",
		Fields: listingFields,
		Validate: func(rec Record) []string {
			reasons := requiredReasons(listingFields, rec)
			if reason := districtReason(rec); reason != "" {
				reasons = append(reasons, reason)
			}
			return reasons
		},
		OwnerID: func(rec Record) int64 {
			return rec["realtor_id"].Int
		},
		Build: func(rec Record, policy DatePolicy) any {
			return database.InsertListingParams{
				RealtorID:   rec["realtor_id"].Int,
				Title:       rec["title"].Text,
				Address:     toText(rec["address"]),
				Street:      toText(rec["street"]),
				District:    toText(rec["district"]),
				Description: toText(rec["description"]),
				Price:       rec["price"].Int,
				Bedrooms:    int32(rec["bedrooms"].Int),
				Bathrooms:   rec["bathrooms"].Dec,
				Clubhouse:   int32(rec["clubhouse"].Int),
				Sqft:        int32(rec["sqft"].Int),
				EstateSize:  rec["estate_size"].Dec,
				IsPublished: rec["is_published"].Bool,
				PhotoMain:   toText(rec["photo_main"]),
				Photo1:      toText(rec["photo_1"]),
				Photo2:      toText(rec["photo_2"]),
				Photo3:      toText(rec["photo_3"]),
				Photo4:      toText(rec["photo_4"]),
				Photo5:      toText(rec["photo_5"]),
				Photo6:      toText(rec["photo_6"]),
				ListDate:    toTimestamp(rec["list_date"], policy),
			}
		},
		Insert: func(ctx context.Context, store Store, params any) (int64, error) {
			return store.CreateListing(ctx, params.(database.InsertListingParams))
		},
		InsertBatch: func(ctx context.Context, store Store, batch []any) (int64, error) {
			ps := make([]database.InsertListingParams, len(batch))
			for i, p := range batch {
				ps[i] = p.(database.InsertListingParams)
			}
			return store.CreateListings(ctx, ps)
		},
	}
}

// toText maps an unset text value to SQL NULL.
func toText(v Value) pgtype.Text {
	if !v.Set {
		return pgtype.Text{}
	}
	return pgtype.Text{String: v.Text, Valid: true}
}

// toTimestamp resolves an optional date against the configured policy:
// absent dates stay NULL under DateUnset and become the current time
// under DateNow.
func toTimestamp(v Value, policy DatePolicy) pgtype.Timestamptz {
	if v.Set {
		return pgtype.Timestamptz{Time: v.Date, Valid: true}
	}
	if policy == DateNow {
		return pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}
	return pgtype.Timestamptz{}
}
