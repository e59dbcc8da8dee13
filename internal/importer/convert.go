package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted date format in import sources.
const DateLayout = "2006-01-02"

// MakeHeaderIndex builds a HeaderIndex from the CSV header row. Column
// names are lowercased for case-insensitive matching; unknown extra
// columns are simply never looked up.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// CoerceRow converts one raw CSV row into a Record by walking the entity's
// field specs and dispatching on each spec's kind. A failed conversion
// never aborts the row: the field is left unset, a warning naming the row
// and field goes to the sink, and coercion continues.
func CoerceRow(specs []FieldSpec, row []string, idx HeaderIndex, rowNum int, sink Sink) Record {
	rec := make(Record, len(specs))
	for _, spec := range specs {
		raw, present := cell(row, idx, spec.Name)
		rec[spec.Name] = coerceField(spec, raw, present, rowNum, sink)
	}
	return rec
}

// cell returns the raw text for a named column. Text is used as-is; the
// source is trusted not to pad values.
func cell(row []string, idx HeaderIndex, name string) (string, bool) {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return "", false
	}
	return row[pos], true
}

func coerceField(spec FieldSpec, raw string, present bool, rowNum int, sink Sink) Value {
	v := Value{Kind: spec.Kind}

	switch spec.Kind {
	case FieldText:
		v.Text = raw
		v.Set = raw != ""

	case FieldBool:
		// Only the literal string "true" (any casing) is true.
		v.Bool = strings.ToLower(raw) == "true"
		v.Set = true

	case FieldInt:
		if !present || raw == "" {
			return v
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			sink.Warn(rowNum, fmt.Sprintf("field %q: invalid integer %q", spec.Name, raw))
			return v
		}
		v.Int = n
		v.Set = true

	case FieldDecimal:
		if !present || raw == "" {
			return v
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			sink.Warn(rowNum, fmt.Sprintf("field %q: invalid decimal %q", spec.Name, raw))
			return v
		}
		v.Dec = f
		v.Set = true

	case FieldDate:
		if !present || raw == "" {
			return v
		}
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			sink.Warn(rowNum, fmt.Sprintf("field %q: invalid date %q, expected YYYY-MM-DD", spec.Name, raw))
			return v
		}
		v.Date = t
		v.Set = true
	}

	return v
}
