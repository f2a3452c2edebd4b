package rewrite

// Pair is a single name=value unit of a query string.
type Pair struct {
	Name  string
	Value string
}

// Operation transforms the working list of pairs for one parameter name.
// The set of operations is closed: AddOperation and RemoveOperation.
type Operation interface {
	// Apply returns pairs after applying the operation for name.
	// The backing array of pairs may be reused.
	Apply(name string, pairs []Pair) []Pair
	// Kind returns "add" or "remove".
	Kind() string

	operation()
}

const (
	KindAdd    = "add"
	KindRemove = "remove"
)
