package crontab_test

import (
	"testing"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reugn/go-crontab/crontab"
)

// Cross-validates forward search against gorhill/cronexpr on the full
// seven-field layout (seconds prepended, year appended).
func TestCrossCheckCronexpr(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"0 0 12 * * * *",
		"15 30 5 1,15 * * *",
		"0 0 9 * * 1-5 *",
		"7 */20 * * * * *",
		"30 30 12-16/2 * JAN * *",
		"0 0 0 29 2 * *",
	}
	ref := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	opts := crontab.Options{Seconds: true, Years: true}

	for _, tt := range expressions {
		expression := tt
		t.Run(expression, func(t *testing.T) {
			t.Parallel()
			schedule, err := crontab.ParseWithOptions(expression, opts)
			require.NoError(t, err)
			oracle, err := cronexpr.Parse(expression)
			require.NoError(t, err)

			mine, theirs := ref, ref
			for i := 0; i < 15; i++ {
				next, ok := schedule.NextFireTime(mine)
				require.True(t, ok)
				mine = next
				theirs = oracle.Next(theirs)
				require.False(t, theirs.IsZero())
				assert.Equal(t, theirs.UTC().Format(time.RFC3339),
					mine.UTC().Format(time.RFC3339))
			}
		})
	}
}

// Cross-validates the standard five-field layout against robfig/cron.
func TestCrossCheckRobfigStandard(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"*/15 * * * *",
		"30 6 * * MON",
		"0 0 1 */2 *",
		"0 9-17 * * 1-5",
		"45 23 28 * *",
	}
	ref := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, tt := range expressions {
		expression := tt
		t.Run(expression, func(t *testing.T) {
			t.Parallel()
			schedule, err := crontab.Parse(expression)
			require.NoError(t, err)
			oracle, err := cron.ParseStandard(expression)
			require.NoError(t, err)

			mine, theirs := ref, ref
			for i := 0; i < 30; i++ {
				next, ok := schedule.NextFireTime(mine)
				require.True(t, ok)
				mine = next
				theirs = oracle.Next(theirs)
				assert.Equal(t, theirs.UTC().Format(time.RFC3339),
					mine.UTC().Format(time.RFC3339))
			}
		})
	}
}

// Cross-validates the seconds extension against robfig/cron's six-field
// parser.
func TestCrossCheckRobfigSeconds(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"30 */10 * * * *",
		"0,30 15 2,14 * * *",
		"10/20 * * * * *",
	}
	ref := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

	for _, tt := range expressions {
		expression := tt
		t.Run(expression, func(t *testing.T) {
			t.Parallel()
			schedule, err := crontab.ParseWithOptions(expression,
				crontab.Options{Seconds: true})
			require.NoError(t, err)
			oracle, err := parser.Parse(expression)
			require.NoError(t, err)

			mine, theirs := ref, ref
			for i := 0; i < 30; i++ {
				next, ok := schedule.NextFireTime(mine)
				require.True(t, ok)
				mine = next
				theirs = oracle.Next(theirs)
				assert.Equal(t, theirs.UTC().Format(time.RFC3339),
					mine.UTC().Format(time.RFC3339))
			}
		})
	}
}
