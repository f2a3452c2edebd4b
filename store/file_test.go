package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInlineSource(t *testing.T) {
	payload, err := InlineSource(`{"a": {"remove": {}}}`).Payload()
	require.NoError(t, err)
	require.Equal(t, `{"a": {"remove": {}}}`, string(payload))
}

func TestFileSource_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": {"remove": {}}}`), 0o600))

	source, err := NewFileSource(path)
	require.NoError(t, err)
	require.Equal(t, path, source.Path())

	payload, err := source.Payload()
	require.NoError(t, err)
	require.JSONEq(t, `{"a": {"remove": {}}}`, string(payload))
}

func TestFileSource_YAMLKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
utm_source:
  remove: {}
ref:
  add:
    position: -1
    value: proxy
debug:
  remove:
    position: "0"
    regexp: "^(1|true)$"
`), 0o600))

	source, err := NewFileSource(path)
	require.NoError(t, err)

	payload, err := source.Payload()
	require.NoError(t, err)
	require.Equal(t,
		`{"utm_source":{"remove":{}},"ref":{"add":{"position":-1,"value":"proxy"}},"debug":{"remove":{"position":"0","regexp":"^(1|true)$"}}}`,
		string(payload))
}

func TestFileSource_Missing(t *testing.T) {
	source, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = source.Payload()
	require.Error(t, err)
}

func TestNewFileSource_EmptyPath(t *testing.T) {
	_, err := NewFileSource("")
	require.Error(t, err)
}

func TestYAMLToJSON(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"scalars", "a: 1\nb: true\nc: null\nd: 1.5\ne: text", `{"a":1,"b":true,"c":null,"d":1.5,"e":"text"}`},
		{"sequence", "- 1\n- x", `[1,"x"]`},
		{"quoted number stays string", `a: "-2"`, `{"a":"-2"}`},
		{"alias", "base: &b\n  remove: {}\nother: *b", `{"base":{"remove":{}},"other":{"remove":{}}}`},
		{"empty mapping", "{}", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YAMLToJSON([]byte(tt.yaml))
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestYAMLToJSON_Errors(t *testing.T) {
	for _, input := range []string{"", "a: [1", "? [a, b]\n: c"} {
		_, err := YAMLToJSON([]byte(input))
		require.Error(t, err, "input %q", input)
	}
}
