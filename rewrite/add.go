package rewrite

import "slices"

// AddOperation inserts a new pair at Position.
type AddOperation struct {
	Position Position
	// Value is inserted as an empty string when nil.
	Value *string
}

// NewAddOperation returns an add at the default position with no value.
func NewAddOperation() *AddOperation {
	return &AddOperation{Position: DefaultAddPosition}
}

// WithValue returns a copy of the operation inserting value.
func (o *AddOperation) WithValue(value string) *AddOperation {
	c := *o
	c.Value = &value
	return &c
}

// At returns a copy of the operation inserting at position.
func (o *AddOperation) At(position Position) *AddOperation {
	c := *o
	c.Position = position
	return &c
}

func (o *AddOperation) Apply(name string, pairs []Pair) []Pair {
	index := ResolvePosition(o.Position, len(pairs), Insertion)

	value := ""
	if o.Value != nil {
		value = *o.Value
	}
	return slices.Insert(pairs, index, Pair{Name: name, Value: value})
}

func (o *AddOperation) Kind() string { return KindAdd }

func (o *AddOperation) operation() {}
