package csm

var _ csmNode = (*CommonNode)(nil)

// CommonNode is a fixed-radix wheel. Its permitted positions are a
// non-empty, strictly ascending list of values.
type CommonNode struct {
	value  int
	values []int
}

func NewCommonNode(value int, values []int) *CommonNode {
	return &CommonNode{value, values}
}

func (n *CommonNode) Value() int {
	return n.value
}

func (n *CommonNode) Reset() {
	n.value = n.values[0]
}

func (n *CommonNode) ResetMax() {
	n.value = n.values[len(n.values)-1]
}

// Next moves to the smallest permitted value greater than the current one,
// wrapping to the minimum on overflow.
func (n *CommonNode) Next() (overflowed bool) {
	for _, value := range n.values {
		if value > n.value {
			n.value = value
			return false
		}
	}
	n.value = n.values[0]
	return true
}

// Prev moves to the largest permitted value smaller than the current one,
// wrapping to the maximum on underflow.
func (n *CommonNode) Prev() (overflowed bool) {
	for i := len(n.values) - 1; i >= 0; i-- {
		if n.values[i] < n.value {
			n.value = n.values[i]
			return false
		}
	}
	n.value = n.values[len(n.values)-1]
	return true
}

func (n *CommonNode) findForward() result {
	if !n.isValid() {
		if n.Next() {
			return overflowed
		}
		return advanced
	}
	return unchanged
}

func (n *CommonNode) findBackward() result {
	if !n.isValid() {
		if n.Prev() {
			return overflowed
		}
		return advanced
	}
	return unchanged
}

func (n *CommonNode) isValid() bool {
	return contains(n.values, n.value)
}
