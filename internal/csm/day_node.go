package csm

import "time"

var _ csmNode = (*DayNode)(nil)

// DayNode is the variable-radix day wheel. Its radix is the length of the
// month selected by the month and year wheels, and its membership test
// combines two value sets: when both the day-of-month and the day-of-week
// sets are restricted, a day is permitted if it satisfies either one
// (standard crontab union semantics); when only one is restricted, that one
// alone governs.
type DayNode struct {
	value int

	monthdays   []int
	monthdayAll bool
	weekdays    []int
	weekdayAll  bool

	month *CommonNode
	year  *CommonNode
}

func NewDayNode(value int, monthdays []int, monthdayAll bool,
	weekdays []int, weekdayAll bool, month, year *CommonNode) *DayNode {
	return &DayNode{value, monthdays, monthdayAll, weekdays, weekdayAll, month, year}
}

func (n *DayNode) Value() int {
	return n.value
}

// Reset parks the wheel at the first day of the month. The day may still be
// outside the permitted sets; the machine's scan moves it forward.
func (n *DayNode) Reset() {
	n.value = 1
}

// ResetMax parks the wheel at the last day of the month selected by the
// month and year wheels.
func (n *DayNode) ResetMax() {
	n.value = n.monthLen()
}

// Next moves to the closest permitted day after the current one within the
// month, wrapping to the first day on overflow.
func (n *DayNode) Next() (overflowed bool) {
	for day := n.value + 1; day <= n.monthLen(); day++ {
		if n.matches(day) {
			n.value = day
			return false
		}
	}
	n.value = 1
	return true
}

// Prev moves to the closest permitted day before the current one within the
// month, wrapping to the maximum representable day on underflow. The wrap
// value may exceed the borrowed-into month's length; the machine's scan
// corrects it.
func (n *DayNode) Prev() (overflowed bool) {
	for day := n.value - 1; day >= 1; day-- {
		if n.matches(day) {
			n.value = day
			return false
		}
	}
	n.value = 31
	return true
}

func (n *DayNode) findForward() result {
	if !n.isValid() {
		if n.Next() {
			return overflowed
		}
		return advanced
	}
	return unchanged
}

func (n *DayNode) findBackward() result {
	if !n.isValid() {
		if n.Prev() {
			return overflowed
		}
		return advanced
	}
	return unchanged
}

func (n *DayNode) isValid() bool {
	return n.matches(n.value)
}

func (n *DayNode) matches(day int) bool {
	if day < 1 || day > n.monthLen() {
		return false
	}
	switch {
	case n.monthdayAll && n.weekdayAll:
		return true
	case n.monthdayAll:
		return contains(n.weekdays, n.weekday(day))
	case n.weekdayAll:
		return contains(n.monthdays, day)
	default:
		return contains(n.monthdays, day) || contains(n.weekdays, n.weekday(day))
	}
}

func (n *DayNode) weekday(day int) int {
	date := time.Date(n.year.Value(), time.Month(n.month.Value()), day, 0, 0, 0, 0, time.UTC)
	return int(date.Weekday())
}

// monthLen returns the number of days in the month selected by the month
// and year wheels, accounting for leap years.
func (n *DayNode) monthLen() int {
	date := time.Date(n.year.Value(), time.Month(n.month.Value())+1, 0, 0, 0, 0, 0, time.UTC)
	return date.Day()
}
