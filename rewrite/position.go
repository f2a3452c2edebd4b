// Package rewrite implements the ordered query-parameter transformation
// applied by the query-rewrite filter: add and remove operations keyed by
// parameter name, resolved against signed positions.
package rewrite

// Position is a signed index into a sequence of query pairs.
// Negative values count from the end.
type Position int8

// DefaultAddPosition appends after the last pair.
const DefaultAddPosition Position = -1

// Mode selects how a Position is mapped onto a concrete index.
type Mode int

const (
	// Insertion resolves to a slot between elements, so len is a valid result.
	Insertion Mode = iota
	// Removal resolves to an existing element.
	Removal
)

func (m Mode) String() string {
	switch m {
	case Insertion:
		return "insertion"
	case Removal:
		return "removal"
	default:
		return "unknown"
	}
}

// ResolvePosition maps position onto an index for a sequence of the given length.
//
// Out-of-range positions are clamped rather than rejected. A negative position
// whose magnitude exceeds length resolves to 0. In Insertion mode -1 resolves to
// length (append); in Removal mode -1 resolves to the last element.
func ResolvePosition(position Position, length int, mode Mode) int {
	if length < 0 {
		length = 0
	}

	if position < 0 {
		magnitude := -int(position)
		if magnitude > length {
			return 0
		}
		if mode == Insertion {
			return length - magnitude + 1
		}
		return length - magnitude
	}

	index := min(int(position), length)
	if mode == Removal && index == length && length > 0 {
		index = length - 1
	}
	return index
}
