package rewrite

import "iter"

// OperationSet is an ordered table of operations keyed by parameter name.
// It is built once and only read afterwards.
type OperationSet struct {
	names []string
	ops   map[string]Operation
}

// NewOperationSet returns an empty set.
func NewOperationSet() *OperationSet {
	return &OperationSet{ops: make(map[string]Operation)}
}

// Set stores op for name. A name that is already present keeps its slot.
func (s *OperationSet) Set(name string, op Operation) {
	if s.ops == nil {
		s.ops = make(map[string]Operation)
	}
	if _, exists := s.ops[name]; !exists {
		s.names = append(s.names, name)
	}
	s.ops[name] = op
}

// Get returns the operation configured for name.
func (s *OperationSet) Get(name string) (Operation, bool) {
	if s == nil {
		return nil, false
	}
	op, ok := s.ops[name]
	return op, ok
}

// Len returns the number of configured parameters.
func (s *OperationSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the parameter names in declaration order.
func (s *OperationSet) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// All iterates the set in declaration order.
func (s *OperationSet) All() iter.Seq2[string, Operation] {
	return func(yield func(string, Operation) bool) {
		if s == nil {
			return
		}
		for _, name := range s.names {
			if !yield(name, s.ops[name]) {
				return
			}
		}
	}
}

// Counts returns how many operations of each kind the set holds.
func (s *OperationSet) Counts() map[string]int {
	counts := map[string]int{KindAdd: 0, KindRemove: 0}
	for _, op := range s.All() {
		counts[op.Kind()]++
	}
	return counts
}
