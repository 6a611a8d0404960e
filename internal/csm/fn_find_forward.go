package csm

// FindForward moves the machine to the nearest position at or after the
// current one in which every wheel holds a permitted value. It reports
// false when the year wheel is exhausted before such a position is found.
func (m *Machine) FindForward() bool {
	for {
		id, res := m.scanForward()
		switch res {
		case unchanged:
			return true
		case advanced:
			m.resetAfter(id)
		case overflowed:
			if id == years || !m.carryForward(id-1) {
				return false
			}
			m.resetAfter(id)
		}
	}
}

// scanForward checks the wheels from coarsest to finest and moves the first
// wheel holding a value that is not permitted. A single pass is not enough:
// the caller must rescan after every change, as a carry can invalidate a
// wheel that was already checked.
func (m *Machine) scanForward() (nodeID, result) {
	for id := years; id <= seconds; id++ {
		if res := m.node(id).findForward(); res != unchanged {
			return id, res
		}
	}
	return seconds, unchanged
}

// carryForward advances the wheel by one permitted value, propagating
// overflow into coarser wheels. It reports false when the carry runs past
// the year wheel.
func (m *Machine) carryForward(id nodeID) bool {
	if m.node(id).Next() {
		if id == years {
			return false
		}
		return m.carryForward(id - 1)
	}
	return true
}
