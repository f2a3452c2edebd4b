package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransform_EmptySet(t *testing.T) {
	query := []Pair{pair("b", "2"), pair("a", "1"), pair("b", "3")}

	for _, set := range []*OperationSet{nil, NewOperationSet()} {
		got := Transform(set, query)
		require.Equal(t, query, got)
	}
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	query := []Pair{pair("a", "1"), pair("b", "2")}
	set := NewOperationSet()
	set.Set("a", RemoveAll())
	set.Set("c", NewAddOperation().At(0).WithValue("3"))

	got := Transform(set, query)

	require.Equal(t, []Pair{pair("c", "3"), pair("b", "2")}, got)
	require.Equal(t, []Pair{pair("a", "1"), pair("b", "2")}, query)
}

func TestTransform_OperationsSeePriorResults(t *testing.T) {
	set, err := Decode([]byte(`{
		"token": {"remove": {}},
		"page": {"add": {"position": 0, "value": "1"}},
		"sort": {"remove": {"position": -1}}
	}`))
	require.NoError(t, err)

	query := []Pair{
		pair("sort", "name"),
		pair("token", "secret"),
		pair("sort", "date"),
		pair("token", "other"),
	}

	got := Transform(set, query)

	require.Equal(t, []Pair{pair("page", "1"), pair("sort", "name")}, got)
}

func TestTransform_RemoveTargetsEarlierAdd(t *testing.T) {
	set := NewOperationSet()
	set.Set("x", NewAddOperation().WithValue("added"))
	set.Set("y", RemoveAll())

	got := Transform(set, []Pair{pair("x", "orig"), pair("y", "1")})
	require.Equal(t, []Pair{pair("x", "orig"), pair("x", "added")}, got)

	// a remove declared after an add for the same name replaces the add
	set.Set("x", RemoveAt(0))
	got = Transform(set, []Pair{pair("x", "orig"), pair("x", "second")})
	require.Equal(t, []Pair{pair("x", "second")}, got)
}
