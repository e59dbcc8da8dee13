package importer

import (
	"fmt"
	"strings"
)

// ValidDistricts is the fixed set of accepted district names for listings.
// An empty district is permitted; a non-empty value must match exactly.
var ValidDistricts = []string{
	"Islands", "Kwai Tsing", "Sai Kung", "Tsuen Wan", "Tuen Mun",
	"Yuen Long", "Wong Tai Sin", "Sha Tin", "Tai Po", "Kowloon City",
	"Kwun Tong", "Sham Shui Po", "Yau Tsim Mong", "Central & Western",
	"Eastern", "Southern", "Wan Chai", "North",
}

var districtSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(ValidDistricts))
	for _, d := range ValidDistricts {
		s[d] = struct{}{}
	}
	return s
}()

// requiredReasons collects one reason per required field the coerced row
// is missing. Reasons follow field order so a single diagnostic enumerates
// every problem.
func requiredReasons(specs []FieldSpec, rec Record) []string {
	var reasons []string
	for _, spec := range specs {
		if spec.Required && !rec[spec.Name].Set {
			reasons = append(reasons, fmt.Sprintf("%s is required", spec.label()))
		}
	}
	return reasons
}

// districtReason checks the listing district against the fixed set. An
// unset district passes; a non-empty unknown one is rejected with a
// reason naming it and the full valid list.
func districtReason(rec Record) string {
	d := rec["district"]
	if !d.Set {
		return ""
	}
	if _, ok := districtSet[d.Text]; ok {
		return ""
	}
	return fmt.Sprintf("Invalid district: %s. Must be one of: %s",
		d.Text, strings.Join(ValidDistricts, ", "))
}
