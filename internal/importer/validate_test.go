package importer

import (
	"strings"
	"testing"
)

func textValue(s string) Value {
	return Value{Kind: FieldText, Text: s, Set: s != ""}
}

func intValue(n int64) Value {
	return Value{Kind: FieldInt, Int: n, Set: true}
}

func TestValidateRealtor(t *testing.T) {
	tests := []struct {
		name        string
		rec         Record
		wantReasons []string
	}{
		{
			name: "complete row accepted",
			rec: Record{
				"name":  textValue("Jane Wong"),
				"email": textValue("jane@bcre.hk"),
				"phone": textValue("+852 9000 0000"),
			},
			wantReasons: nil,
		},
		{
			name: "missing email",
			rec: Record{
				"name":  textValue("Jane Wong"),
				"email": textValue(""),
				"phone": textValue("+852 9000 0000"),
			},
			wantReasons: []string{"Email is required"},
		},
		{
			name: "all required fields missing collects every reason",
			rec: Record{
				"name":  textValue(""),
				"email": textValue(""),
				"phone": textValue(""),
			},
			wantReasons: []string{"Name is required", "Phone is required", "Email is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, _ := Lookup("realtor")
			got := def.Validate(tt.rec)
			assertReasons(t, got, tt.wantReasons)
		})
	}
}

func listingValidate(rec Record) []string {
	def, _ := Lookup("listing")
	return def.Validate(rec)
}

func TestValidateListing(t *testing.T) {
	valid := func() Record {
		return Record{
			"title":      textValue("2BR flat"),
			"price":      intValue(4200000),
			"realtor_id": intValue(1),
			"district":   textValue("Sha Tin"),
		}
	}

	t.Run("complete row accepted", func(t *testing.T) {
		if got := listingValidate(valid()); len(got) != 0 {
			t.Errorf("unexpected reasons: %v", got)
		}
	})

	t.Run("empty district bypasses the check", func(t *testing.T) {
		rec := valid()
		rec["district"] = textValue("")
		if got := listingValidate(rec); len(got) != 0 {
			t.Errorf("unexpected reasons: %v", got)
		}
	})

	t.Run("missing required fields collects every reason", func(t *testing.T) {
		rec := valid()
		rec["title"] = textValue("")
		rec["price"] = Value{Kind: FieldInt}
		rec["realtor_id"] = Value{Kind: FieldInt}
		got := listingValidate(rec)
		assertReasons(t, got, []string{"Realtor ID is required", "Title is required", "Price is required"})
	})

	t.Run("unknown district rejected with full valid list", func(t *testing.T) {
		rec := valid()
		rec["district"] = textValue("Mars")
		got := listingValidate(rec)
		if len(got) != 1 {
			t.Fatalf("expected 1 reason, got %v", got)
		}
		if !strings.Contains(got[0], "Invalid district: Mars") {
			t.Errorf("reason should name the invalid district: %q", got[0])
		}
		for _, d := range ValidDistricts {
			if !strings.Contains(got[0], d) {
				t.Errorf("reason should list valid district %q", d)
			}
		}
	})

	t.Run("all 18 districts accepted", func(t *testing.T) {
		if len(ValidDistricts) != 18 {
			t.Fatalf("expected 18 districts, got %d", len(ValidDistricts))
		}
		for _, d := range ValidDistricts {
			rec := valid()
			rec["district"] = textValue(d)
			if got := listingValidate(rec); len(got) != 0 {
				t.Errorf("district %q rejected: %v", d, got)
			}
		}
	})

	t.Run("district match is case sensitive", func(t *testing.T) {
		rec := valid()
		rec["district"] = textValue("sha tin")
		if got := listingValidate(rec); len(got) != 1 {
			t.Errorf("lowercased district should be rejected, got %v", got)
		}
	})
}

func assertReasons(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("reasons = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reason[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
