package crontab

import (
	"time"

	"github.com/reugn/go-crontab/internal/csm"
)

// Direction selects which neighbor of the reference instant a search or an
// iteration walks toward.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// NextFireTime returns the first instant strictly after ref at which the
// schedule fires. It returns false when no match exists within the
// schedule's year horizon; that is a defined outcome, not an error.
func (s *Schedule) NextFireTime(ref time.Time) (time.Time, bool) {
	machine := s.machine(ref.Truncate(time.Second).Add(time.Second))
	if !machine.FindForward() {
		return time.Time{}, false
	}
	return machine.Value(s.location), true
}

// PreviousFireTime returns the last instant strictly before ref at which
// the schedule fires. It returns false when no match exists within the
// schedule's year horizon.
func (s *Schedule) PreviousFireTime(ref time.Time) (time.Time, bool) {
	start := ref.Truncate(time.Second)
	if start.Equal(ref) {
		start = start.Add(-time.Second)
	}
	machine := s.machine(start)
	if !machine.FindBackward() {
		return time.Time{}, false
	}
	return machine.Value(s.location), true
}

// machine builds a calendar state machine positioned at the given instant,
// expressed in the schedule's timezone.
func (s *Schedule) machine(t time.Time) *csm.Machine {
	t = t.In(s.location)
	year := csm.NewCommonNode(t.Year(), s.year.values)
	month := csm.NewCommonNode(int(t.Month()), s.month.values)
	day := csm.NewDayNode(t.Day(),
		s.dayOfMonth.values, s.dayOfMonth.wildcard,
		s.dayOfWeek.values, s.dayOfWeek.wildcard,
		month, year)
	hour := csm.NewCommonNode(t.Hour(), s.hour.values)
	minute := csm.NewCommonNode(t.Minute(), s.minute.values)
	second := csm.NewCommonNode(t.Second(), s.second.values)
	return csm.NewMachine(second, minute, hour, day, month, year)
}
