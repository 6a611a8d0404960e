package crontab

import "time"

// Iterator is a lazily advancing cursor over a schedule's fire times. Each
// call to Next computes one fire time using the previous one as the new
// reference. Two iterators created with the same start instant produce
// identical sequences.
//
// An Iterator is not safe for concurrent advancement without external
// locking. The Schedule it reads from may be shared freely.
type Iterator struct {
	schedule  *Schedule
	direction Direction
	current   time.Time
	exhausted bool
}

// Iterate returns a cursor over the schedule's fire times adjacent to
// startFrom, walking in the given direction. The start instant itself is
// never produced, even when it matches the schedule.
func (s *Schedule) Iterate(startFrom time.Time, direction Direction) *Iterator {
	return &Iterator{
		schedule:  s,
		direction: direction,
		current:   startFrom,
	}
}

// Next returns the next fire time in the iterator's direction. It returns
// false once the schedule's year horizon is exhausted; the iterator then
// stays exhausted.
func (it *Iterator) Next() (time.Time, bool) {
	if it.exhausted {
		return time.Time{}, false
	}
	var fireTime time.Time
	var ok bool
	if it.direction == Backward {
		fireTime, ok = it.schedule.PreviousFireTime(it.current)
	} else {
		fireTime, ok = it.schedule.NextFireTime(it.current)
	}
	if !ok {
		it.exhausted = true
		return time.Time{}, false
	}
	it.current = fireTime
	return fireTime, true
}
