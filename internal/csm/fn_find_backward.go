package csm

// FindBackward moves the machine to the nearest position at or before the
// current one in which every wheel holds a permitted value. It reports
// false when the year wheel is exhausted before such a position is found.
//
// This is the mirror of FindForward, not forward search in reverse time:
// wheels move to the largest permitted value below the current one, borrows
// propagate into coarser wheels, and finer wheels reset to their maximum.
func (m *Machine) FindBackward() bool {
	for {
		id, res := m.scanBackward()
		switch res {
		case unchanged:
			return true
		case advanced:
			m.resetMaxAfter(id)
		case overflowed:
			if id == years || !m.carryBackward(id-1) {
				return false
			}
			m.resetMaxAfter(id)
		}
	}
}

// scanBackward checks the wheels from coarsest to finest and moves the
// first wheel holding a value that is not permitted. As with scanForward,
// the caller must rescan after every change.
func (m *Machine) scanBackward() (nodeID, result) {
	for id := years; id <= seconds; id++ {
		if res := m.node(id).findBackward(); res != unchanged {
			return id, res
		}
	}
	return seconds, unchanged
}

// carryBackward moves the wheel back by one permitted value, propagating
// the borrow into coarser wheels. It reports false when the borrow runs
// past the year wheel.
func (m *Machine) carryBackward(id nodeID) bool {
	if m.node(id).Prev() {
		if id == years {
			return false
		}
		return m.carryBackward(id - 1)
	}
	return true
}
