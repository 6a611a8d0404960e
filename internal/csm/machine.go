package csm

import "time"

type nodeID int

// Wheels in significance order, coarsest first.
const (
	years nodeID = iota
	months
	days
	hours
	minutes
	seconds
)

// Machine is a mixed-radix odometer over calendar components. Each wheel's
// permitted positions are the values of one schedule field.
type Machine struct {
	second csmNode
	minute csmNode
	hour   csmNode
	day    *DayNode
	month  *CommonNode
	year   *CommonNode
}

func NewMachine(second, minute, hour *CommonNode, day *DayNode, month, year *CommonNode) *Machine {
	return &Machine{second, minute, hour, day, month, year}
}

// Value materializes the machine's current position as an instant in the
// given location, resolving the UTC offset in effect at that moment.
func (m *Machine) Value(loc *time.Location) time.Time {
	return time.Date(
		m.year.Value(),
		time.Month(m.month.Value()),
		m.day.Value(),
		m.hour.Value(),
		m.minute.Value(),
		m.second.Value(),
		0, loc,
	)
}

func (m *Machine) node(id nodeID) csmNode {
	switch id {
	case years:
		return m.year
	case months:
		return m.month
	case days:
		return m.day
	case hours:
		return m.hour
	case minutes:
		return m.minute
	case seconds:
		return m.second
	}
	return nil
}

// resetAfter parks every wheel finer than id at its minimum permitted value.
func (m *Machine) resetAfter(id nodeID) {
	for i := id + 1; i <= seconds; i++ {
		m.node(i).Reset()
	}
}

// resetMaxAfter parks every wheel finer than id at its maximum permitted value.
func (m *Machine) resetMaxAfter(id nodeID) {
	for i := id + 1; i <= seconds; i++ {
		m.node(i).ResetMax()
	}
}
