package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InlineSource is a payload embedded directly in the filter configuration.
type InlineSource []byte

// Payload returns the embedded payload.
func (s InlineSource) Payload() ([]byte, error) {
	return []byte(s), nil
}

// FileSource reads the operations payload from a file.
// Files ending in .yaml or .yml are converted to JSON, everything else is
// returned as is.
type FileSource struct {
	filePath string
}

// NewFileSource creates a new FileSource. The file is not read until Payload is called.
func NewFileSource(filePath string) (*FileSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("operations file path is empty")
	}
	return &FileSource{filePath: filePath}, nil
}

// Path returns the file the source reads from.
func (s *FileSource) Path() string {
	return s.filePath
}

// Payload reads and, for YAML files, converts the file.
func (s *FileSource) Payload() ([]byte, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read operations file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(s.filePath)) {
	case ".yaml", ".yml":
		payload, err := YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", s.filePath, err)
		}
		return payload, nil
	default:
		return data, nil
	}
}
