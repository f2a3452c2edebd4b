package filter

import (
	"github.com/rashpile/go-envoy-query-rewrite/rewrite"
)

// Name is the name the filter is registered under in Envoy.
const Name = "query-rewrite"

// Configuration keys read from the TypedStruct value.
const (
	KeyOperations     = "operations"
	KeyOperationsFile = "operations_file"

	// EnvOperationsFile overrides operations_file.
	EnvOperationsFile = "QUERY_REWRITE_OPERATIONS_FILE"
)

// Config holds the parsed filter configuration
type Config struct {
	// Source describes where the operations come from: "inline", "file:<path>"
	// or empty when nothing is configured.
	Source string

	loader *rewrite.Loader
}

// NewConfig creates a configuration whose operations are read from source on first use.
// A nil source configures a pass-through filter.
func NewConfig(description string, source rewrite.PayloadSource) *Config {
	return &Config{
		Source: description,
		loader: rewrite.NewLoader(source, GetLogger()),
	}
}

// Operations returns the operation set, decoding it on the first call.
// An invalid configuration yields an empty set.
func (c *Config) Operations() *rewrite.OperationSet {
	if c == nil || c.loader == nil {
		return nil
	}
	return c.loader.OperationSet()
}

// HasSource reports whether operations were configured at all.
func (c *Config) HasSource() bool {
	return c != nil && c.Source != ""
}

// failedSource reports a configuration error when the payload is first read,
// so it goes through the same warn-and-fall-back path as a bad payload.
type failedSource struct {
	err error
}

func (s failedSource) Payload() ([]byte, error) {
	return nil, s.err
}
