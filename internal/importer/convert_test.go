package importer

import (
	"fmt"
	"strconv"
	"testing"
	"time"
)

// ----------------------------------------------------------------------------
// Boolean coercion
// ----------------------------------------------------------------------------

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"", false},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"t", false},
	}

	sink := &MemorySink{}
	spec := FieldSpec{Name: "is_mvp", Kind: FieldBool}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("input=%q", tt.input), func(t *testing.T) {
			v := coerceField(spec, tt.input, true, 1, sink)
			if v.Bool != tt.want {
				t.Errorf("coerceField(%q) = %v, want %v", tt.input, v.Bool, tt.want)
			}
		})
	}

	// Missing column is false as well.
	v := coerceField(spec, "", false, 1, sink)
	if v.Bool {
		t.Error("missing bool column should coerce to false")
	}

	if len(sink.Entries) != 0 {
		t.Errorf("bool coercion should never warn, got %d diagnostics", len(sink.Entries))
	}
}

// ----------------------------------------------------------------------------
// Numeric coercion
// ----------------------------------------------------------------------------

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		present  bool
		wantSet  bool
		wantInt  int64
		wantWarn bool
	}{
		{name: "valid", input: "42", present: true, wantSet: true, wantInt: 42},
		{name: "zero", input: "0", present: true, wantSet: true, wantInt: 0},
		{name: "negative", input: "-7", present: true, wantSet: true, wantInt: -7},
		{name: "empty defaults", input: "", present: true, wantSet: false, wantInt: 0},
		{name: "missing defaults", input: "", present: false, wantSet: false, wantInt: 0},
		{name: "garbage warns and defaults", input: "abc", present: true, wantSet: false, wantInt: 0, wantWarn: true},
		{name: "float is not an int", input: "3.5", present: true, wantSet: false, wantInt: 0, wantWarn: true},
	}

	spec := FieldSpec{Name: "bedrooms", Kind: FieldInt}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &MemorySink{}
			v := coerceField(spec, tt.input, tt.present, 3, sink)
			if v.Set != tt.wantSet || v.Int != tt.wantInt {
				t.Errorf("got Set=%v Int=%d, want Set=%v Int=%d", v.Set, v.Int, tt.wantSet, tt.wantInt)
			}
			if tt.wantWarn {
				if len(sink.Entries) != 1 {
					t.Fatalf("expected 1 warning, got %d", len(sink.Entries))
				}
				if sink.Entries[0].Row != 3 {
					t.Errorf("warning row = %d, want 3", sink.Entries[0].Row)
				}
			} else if len(sink.Entries) != 0 {
				t.Errorf("unexpected diagnostics: %v", sink.Entries)
			}
		})
	}
}

func TestCoerceDecimal(t *testing.T) {
	sink := &MemorySink{}
	spec := FieldSpec{Name: "bathrooms", Kind: FieldDecimal}

	v := coerceField(spec, "2.5", true, 1, sink)
	if !v.Set || v.Dec != 2.5 {
		t.Errorf("got Set=%v Dec=%v, want Set=true Dec=2.5", v.Set, v.Dec)
	}

	v = coerceField(spec, "", true, 1, sink)
	if v.Set || v.Dec != 0 {
		t.Errorf("empty decimal should default to 0, got Set=%v Dec=%v", v.Set, v.Dec)
	}

	v = coerceField(spec, "two", true, 1, sink)
	if v.Set || len(sink.Entries) != 1 {
		t.Errorf("invalid decimal should warn and default, got Set=%v warnings=%d", v.Set, len(sink.Entries))
	}
}

// ----------------------------------------------------------------------------
// Date coercion
// ----------------------------------------------------------------------------

func TestCoerceDate(t *testing.T) {
	spec := FieldSpec{Name: "hire_date", Kind: FieldDate}

	sink := &MemorySink{}
	v := coerceField(spec, "2020-03-14", true, 1, sink)
	if !v.Set {
		t.Fatal("valid date should be set")
	}
	want := time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)
	if !v.Date.Equal(want) {
		t.Errorf("date = %v, want %v", v.Date, want)
	}

	// Malformed dates warn and are treated as absent, never fatal.
	for _, bad := range []string{"14/03/2020", "2020-13-01", "yesterday"} {
		sink := &MemorySink{}
		v := coerceField(spec, bad, true, 5, sink)
		if v.Set {
			t.Errorf("date %q should not be set", bad)
		}
		if len(sink.Entries) != 1 || sink.Entries[0].Level != LevelWarn {
			t.Errorf("date %q should produce one warning, got %v", bad, sink.Entries)
		}
	}

	// Absent dates are silent; the policy decides later.
	sink = &MemorySink{}
	v = coerceField(spec, "", true, 1, sink)
	if v.Set || len(sink.Entries) != 0 {
		t.Errorf("empty date should be silently unset, got Set=%v diags=%d", v.Set, len(sink.Entries))
	}
}

// ----------------------------------------------------------------------------
// Text coercion and idempotence
// ----------------------------------------------------------------------------

func TestCoerceTextUsesRawValue(t *testing.T) {
	sink := &MemorySink{}
	spec := FieldSpec{Name: "title", Kind: FieldText}

	v := coerceField(spec, "  Flat in Sha Tin  ", true, 1, sink)
	if v.Text != "  Flat in Sha Tin  " {
		t.Errorf("text must not be trimmed, got %q", v.Text)
	}
	if !v.Set {
		t.Error("non-empty text should be set")
	}

	v = coerceField(spec, "", true, 1, sink)
	if v.Set {
		t.Error("empty text should be unset")
	}
}

// Re-coercing a coerced value through its canonical text form yields the
// same typed value.
func TestCoercionIdempotence(t *testing.T) {
	sink := &MemorySink{}

	intSpec := FieldSpec{Name: "price", Kind: FieldInt}
	v1 := coerceField(intSpec, "2500000", true, 1, sink)
	v2 := coerceField(intSpec, strconv.FormatInt(v1.Int, 10), true, 1, sink)
	if v1 != v2 {
		t.Errorf("int round trip changed value: %+v vs %+v", v1, v2)
	}

	decSpec := FieldSpec{Name: "estate_size", Kind: FieldDecimal}
	d1 := coerceField(decSpec, "120.5", true, 1, sink)
	d2 := coerceField(decSpec, strconv.FormatFloat(d1.Dec, 'f', -1, 64), true, 1, sink)
	if d1 != d2 {
		t.Errorf("decimal round trip changed value: %+v vs %+v", d1, d2)
	}

	dateSpec := FieldSpec{Name: "list_date", Kind: FieldDate}
	t1 := coerceField(dateSpec, "2021-06-01", true, 1, sink)
	t2 := coerceField(dateSpec, t1.Date.Format(DateLayout), true, 1, sink)
	if !t1.Date.Equal(t2.Date) || t1.Set != t2.Set {
		t.Errorf("date round trip changed value: %+v vs %+v", t1, t2)
	}

	boolSpec := FieldSpec{Name: "is_published", Kind: FieldBool}
	b1 := coerceField(boolSpec, "true", true, 1, sink)
	b2 := coerceField(boolSpec, strconv.FormatBool(b1.Bool), true, 1, sink)
	if b1.Bool != b2.Bool {
		t.Errorf("bool round trip changed value: %+v vs %+v", b1, b2)
	}
}

// ----------------------------------------------------------------------------
// Header index and full-row coercion
// ----------------------------------------------------------------------------

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{"Name", " EMAIL ", "phone"})

	for _, col := range []string{"name", "email", "phone"} {
		if _, ok := idx[col]; !ok {
			t.Errorf("missing column %q in index", col)
		}
	}
}

func TestCoerceRowUnknownColumnsIgnored(t *testing.T) {
	specs := []FieldSpec{
		{Name: "name", Kind: FieldText, Required: true},
		{Name: "email", Kind: FieldText, Required: true},
	}
	idx := MakeHeaderIndex([]string{"name", "favourite_colour", "email"})
	sink := &MemorySink{}

	rec := CoerceRow(specs, []string{"Jane", "teal", "jane@example.com"}, idx, 1, sink)

	if rec["name"].Text != "Jane" || rec["email"].Text != "jane@example.com" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(rec) != 2 {
		t.Errorf("record should hold only declared fields, got %d", len(rec))
	}
}

func TestCoerceRowMissingOptionalColumn(t *testing.T) {
	specs := []FieldSpec{
		{Name: "title", Kind: FieldText, Required: true},
		{Name: "bedrooms", Kind: FieldInt},
	}
	idx := MakeHeaderIndex([]string{"title"})
	sink := &MemorySink{}

	rec := CoerceRow(specs, []string{"Cozy flat"}, idx, 1, sink)

	if v := rec["bedrooms"]; v.Set || v.Int != 0 {
		t.Errorf("missing optional int should default to 0, got %+v", v)
	}
	if len(sink.Entries) != 0 {
		t.Errorf("missing optional column should not warn: %v", sink.Entries)
	}
}
