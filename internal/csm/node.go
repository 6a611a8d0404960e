package csm

type csmNode interface {
	// Value returns the value held by the node.
	Value() int

	// Reset sets the node to its minimum permitted value.
	Reset()

	// ResetMax sets the node to its maximum permitted value.
	ResetMax()

	// Next moves the node to the next permitted value.
	// It returns true if the value wrapped around and false otherwise.
	Next() bool

	// Prev moves the node to the previous permitted value.
	// It returns true if the value wrapped around and false otherwise.
	Prev() bool

	// findForward checks if the current node value is permitted.
	// If it is not, move forward to the next permitted value.
	findForward() result

	// findBackward checks if the current node value is permitted.
	// If it is not, move back to the previous permitted value.
	findBackward() result
}

type result int

const (
	unchanged result = iota
	advanced
	overflowed
)
