// Package csm implements a calendar state machine focused on a single task:
// given an arbitrary date and a set of permitted values per calendar field,
// find the nearest instant at or after (or at or before) that date whose
// fields are all permitted.
//
// A date can be thought of as a mixed-radix number
// (https://en.wikipedia.org/wiki/Mixed_radix) whose wheels are the calendar
// fields, ordered year, month, day, hour, minute, second. Each wheel's
// permitted positions are the values of one schedule field rather than a
// dense range.
//
// Machine.FindForward checks the wheels from most significant (year) to
// least significant (second) for any value that is not permitted and moves
// it forward to the next permitted value. This resets less significant
// wheels and can overflow, carrying into more significant wheels. Since a
// carry can invalidate a wheel that was already checked, the scan restarts
// from the year wheel after every change and terminates on the first full
// pass that changes nothing. Machine.FindBackward is the mirrored
// algorithm: wheels move to the largest permitted value below the current
// one, borrows propagate upward, and finer wheels reset to their maximum.
//
// The day wheel does not have a constant radix: it depends on the month and
// the year (January always has 31 days, while February 2024 has 29). It
// also combines two value sets, day-of-month and day-of-week. Both concerns
// are handled by the DayNode type.
package csm
