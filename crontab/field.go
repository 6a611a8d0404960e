package crontab

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type fieldKind int

const (
	secondField fieldKind = iota
	minuteField
	hourField
	dayOfMonthField
	monthField
	dayOfWeekField
	yearField
)

type fieldSpec struct {
	name  string
	min   int
	max   int
	names []string // aliases for consecutive values starting at nameBase
	base  int
}

var (
	monthNames   = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
	weekdayNames = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
)

// Day-of-week accepts 7 at parse time; it normalizes to 0 (Sunday).
var fieldSpecs = [...]fieldSpec{
	secondField:     {name: "second", min: 0, max: 59},
	minuteField:     {name: "minute", min: 0, max: 59},
	hourField:       {name: "hour", min: 0, max: 23},
	dayOfMonthField: {name: "day-of-month", min: 1, max: 31},
	monthField:      {name: "month", min: 1, max: 12, names: monthNames, base: 1},
	dayOfWeekField:  {name: "day-of-week", min: 0, max: 7, names: weekdayNames, base: 0},
	yearField:       {name: "year", min: 1970, max: 2099},
}

// Matcher is the set of integer values one schedule field accepts: a
// non-empty, strictly ascending sequence within the field's valid range.
// A Matcher is a wildcard when every comma-separated piece of its field
// token was star-based (`*` or `*/step`); the wildcard property drives the
// day-of-month/day-of-week union rule.
type Matcher struct {
	values   []int
	wildcard bool
}

// Values returns a copy of the accepted values in ascending order.
func (m Matcher) Values() []int {
	values := make([]int, len(m.values))
	copy(values, m.values)
	return values
}

// Contains reports whether the value is accepted by the matcher.
func (m Matcher) Contains(value int) bool {
	i := sort.SearchInts(m.values, value)
	return i < len(m.values) && m.values[i] == value
}

// IsWildcard reports whether the field was star-based.
func (m Matcher) IsWildcard() bool {
	return m.wildcard
}

// String returns an informational representation of the matcher.
func (m Matcher) String() string {
	if m.wildcard && len(m.values) > 0 {
		return "*"
	}
	parts := make([]string, len(m.values))
	for i, v := range m.values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// parseField expands one whitespace-delimited field token into a Matcher.
// The token is split on commas; each piece is one of `*`, `N`, `N-M`,
// `*/S`, `N-M/S` or `N/S` (N to the field maximum, stepping S), with N and
// M optionally given as month or weekday names.
func parseField(kind fieldKind, token string) (Matcher, error) {
	spec := fieldSpecs[kind]
	if token == "" {
		return Matcher{}, errParse(spec.name + " field is empty")
	}
	var values []int
	wildcard := true
	for _, piece := range strings.Split(token, ",") {
		expanded, star, err := expandPiece(spec, piece)
		if err != nil {
			return Matcher{}, err
		}
		wildcard = wildcard && star
		values = append(values, expanded...)
	}
	if kind == dayOfWeekField {
		for i, v := range values {
			if v == 7 {
				values[i] = 0
			}
		}
	}
	sort.Ints(values)
	return Matcher{values: uniqueInts(values), wildcard: wildcard}, nil
}

// expandPiece expands one comma-separated piece to explicit values. The
// second return value reports whether the piece was star-based.
func expandPiece(spec fieldSpec, piece string) ([]int, bool, error) {
	interval, stepText, hasStep := strings.Cut(piece, "/")
	step := 1
	if hasStep {
		parsed, err := strconv.Atoi(stepText)
		if err != nil {
			return nil, false, errParse(fmt.Sprintf("invalid %s step: %q", spec.name, stepText))
		}
		if parsed < 1 {
			return nil, false, errParse(fmt.Sprintf("%s step must be positive, got %d", spec.name, parsed))
		}
		step = parsed
	}
	if interval == "*" {
		return fillStep(spec.min, spec.max, step), true, nil
	}
	fromText, toText, hasRange := strings.Cut(interval, "-")
	from, err := resolveValue(spec, fromText)
	if err != nil {
		return nil, false, err
	}
	to := from
	switch {
	case hasRange:
		if to, err = resolveValue(spec, toText); err != nil {
			return nil, false, err
		}
		if from > to {
			return nil, false, errParse(fmt.Sprintf("%s range %d-%d is empty", spec.name, from, to))
		}
	case hasStep:
		to = spec.max
	}
	return fillStep(from, to, step), false, nil
}

// resolveValue parses a single bound, trying the field's alias table before
// falling back to numeric parsing. Aliases are matched case-insensitively.
func resolveValue(spec fieldSpec, text string) (int, error) {
	if text == "" {
		return 0, errParse(spec.name + " value is empty")
	}
	if spec.names != nil {
		upper := strings.ToUpper(text)
		for i, name := range spec.names {
			if name == upper {
				return spec.base + i, nil
			}
		}
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, errParse(fmt.Sprintf("invalid %s value: %q", spec.name, text))
	}
	if value < spec.min || value > spec.max {
		return 0, errParse(fmt.Sprintf("%s value must be in range [%d, %d], got %d",
			spec.name, spec.min, spec.max, value))
	}
	return value, nil
}

func fillStep(from, to, step int) []int {
	values := make([]int, 0, (to-from)/step+1)
	for v := from; v <= to; v += step {
		values = append(values, v)
	}
	return values
}

// uniqueInts removes consecutive duplicates from a sorted slice, in place.
func uniqueInts(sorted []int) []int {
	out := sorted[:0]
	for _, v := range sorted {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}
