// Package crontab parses crontab-style schedule expressions and computes
// the instants at which a schedule fires. It answers "when is the next (or
// previous) match" for a given reference instant; it never sleeps, triggers
// actions, or manages timers.
package crontab

import (
	"fmt"
	"strings"
	"time"
)

// Options configures the expression layout and the timezone in which a
// schedule is interpreted.
type Options struct {
	// Seconds enables the seconds extension: a seconds field is expected
	// before the minute field. Without it the schedule fires at second 0.
	Seconds bool

	// Years enables the year extension: a year field (1970-2099) is
	// expected after the day-of-week field. Without it every year in that
	// range is accepted.
	Years bool

	// Location is the timezone used to interpret and produce instants.
	// A nil Location means time.UTC.
	Location *time.Location
}

// Schedule is an immutable crontab schedule: one Matcher per field plus the
// timezone used to interpret instants. A Schedule is safe for concurrent
// use; every search reads the schedule and writes only to its own state.
type Schedule struct {
	second     Matcher
	minute     Matcher
	hour       Matcher
	dayOfMonth Matcher
	month      Matcher
	dayOfWeek  Matcher
	year       Matcher

	seconds  bool
	years    bool
	location *time.Location
	tokens   []string
}

// predefined expressions, expanded to the five-field layout
var predefined = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// Parse parses a standard five-field crontab expression
// (minute hour day-of-month month day-of-week) in UTC.
func Parse(expression string) (*Schedule, error) {
	return ParseWithOptions(expression, Options{})
}

// ParseWithOptions parses a crontab expression with the given layout and
// timezone. The expression is split on whitespace and must have exactly
// five fields, plus one for each enabled extension. The predefined
// expressions @yearly, @annually, @monthly, @weekly, @daily, @midnight and
// @hourly are accepted in any layout.
func ParseWithOptions(expression string, opts Options) (*Schedule, error) {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}
	tokens := strings.Fields(expression)
	if len(tokens) == 1 {
		if value, ok := predefined[tokens[0]]; ok {
			tokens = strings.Fields(value)
			if opts.Seconds {
				tokens = append([]string{"0"}, tokens...)
			}
			if opts.Years {
				tokens = append(tokens, "*")
			}
		}
	}
	expected := 5
	if opts.Seconds {
		expected++
	}
	if opts.Years {
		expected++
	}
	if len(tokens) != expected {
		return nil, errParse(fmt.Sprintf("expression must have %d fields, got %d",
			expected, len(tokens)))
	}

	schedule := &Schedule{
		seconds:  opts.Seconds,
		years:    opts.Years,
		location: location,
		tokens:   tokens,
	}
	i := 0
	take := func() string {
		token := tokens[i]
		i++
		return token
	}
	var err error
	if opts.Seconds {
		if schedule.second, err = parseField(secondField, take()); err != nil {
			return nil, err
		}
	} else {
		schedule.second = Matcher{values: []int{0}}
	}
	if schedule.minute, err = parseField(minuteField, take()); err != nil {
		return nil, err
	}
	if schedule.hour, err = parseField(hourField, take()); err != nil {
		return nil, err
	}
	if schedule.dayOfMonth, err = parseField(dayOfMonthField, take()); err != nil {
		return nil, err
	}
	if schedule.month, err = parseField(monthField, take()); err != nil {
		return nil, err
	}
	if schedule.dayOfWeek, err = parseField(dayOfWeekField, take()); err != nil {
		return nil, err
	}
	if opts.Years {
		if schedule.year, err = parseField(yearField, take()); err != nil {
			return nil, err
		}
	} else {
		schedule.year, _ = parseField(yearField, "*")
	}
	return schedule, nil
}

// ValidateExpression reports whether the expression parses under the given
// options.
func ValidateExpression(expression string, opts Options) error {
	_, err := ParseWithOptions(expression, opts)
	return err
}

// String returns the normalized expression text: the original fields joined
// by single spaces. Parsing it with the same options yields an equivalent
// schedule.
func (s *Schedule) String() string {
	return strings.Join(s.tokens, " ")
}

// Location returns the timezone the schedule is interpreted in.
func (s *Schedule) Location() *time.Location {
	return s.location
}

// Seconds returns the seconds Matcher. Without the seconds extension it
// accepts only 0.
func (s *Schedule) Seconds() Matcher { return s.second }

// Minutes returns the minute Matcher.
func (s *Schedule) Minutes() Matcher { return s.minute }

// Hours returns the hour Matcher.
func (s *Schedule) Hours() Matcher { return s.hour }

// DaysOfMonth returns the day-of-month Matcher. Day validity against a
// specific month's length is checked during search, not at parse time.
func (s *Schedule) DaysOfMonth() Matcher { return s.dayOfMonth }

// Months returns the month Matcher.
func (s *Schedule) Months() Matcher { return s.month }

// DaysOfWeek returns the day-of-week Matcher, with Sunday as 0.
func (s *Schedule) DaysOfWeek() Matcher { return s.dayOfWeek }

// Years returns the year Matcher. Without the year extension it accepts
// every year in the 1970-2099 range.
func (s *Schedule) Years() Matcher { return s.year }
