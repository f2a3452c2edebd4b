package rewrite

import "slices"

// RemoveOperation deletes pairs by name.
//
// With a nil Position every pair named name is removed, restricted to values
// matched by Pattern when one is set. With a Position only the occurrence at
// that position among the same-named pairs is removed and Pattern is not
// consulted.
type RemoveOperation struct {
	Position *Position
	Pattern  *Pattern
}

// RemoveAll returns an unfiltered remove of every occurrence.
func RemoveAll() *RemoveOperation {
	return &RemoveOperation{}
}

// RemoveAt returns a remove of the occurrence at position.
func RemoveAt(position Position) *RemoveOperation {
	return &RemoveOperation{Position: &position}
}

// Matching returns a copy of the operation filtered by pattern.
func (o *RemoveOperation) Matching(pattern *Pattern) *RemoveOperation {
	c := *o
	c.Pattern = pattern
	return &c
}

func (o *RemoveOperation) Apply(name string, pairs []Pair) []Pair {
	if o.Position == nil {
		return slices.DeleteFunc(pairs, func(p Pair) bool {
			return p.Name == name && (o.Pattern == nil || o.Pattern.MatchString(p.Value))
		})
	}

	var indices []int
	for i, p := range pairs {
		if p.Name == name {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return pairs
	}

	k := ResolvePosition(*o.Position, len(indices), Removal)
	i := indices[k]
	return slices.Delete(pairs, i, i+1)
}

func (o *RemoveOperation) Kind() string { return KindRemove }

func (o *RemoveOperation) operation() {}

// Equal reports whether both operations have the same position and pattern.
func (o *RemoveOperation) Equal(other *RemoveOperation) bool {
	if o == nil || other == nil {
		return o == other
	}
	if (o.Position == nil) != (other.Position == nil) {
		return false
	}
	if o.Position != nil && *o.Position != *other.Position {
		return false
	}
	return o.Pattern.Equal(other.Pattern)
}
