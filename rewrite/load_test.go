package rewrite

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type countingSource struct {
	mu      sync.Mutex
	calls   int
	payload []byte
	err     error
}

func (s *countingSource) Payload() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.payload, s.err
}

func TestLoad_Valid(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	set := Load([]byte(`{"a": {"remove": {}}}`), zap.New(core))

	require.Equal(t, 1, set.Len())
	require.Equal(t, 0, logs.Len())
}

func TestLoad_InvalidPatternFallsBackToEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	set := Load([]byte(`{"a": {"remove": {}}, "b": {"remove": {"regexp": "[z-a]"}}}`), zap.New(core))

	require.NotNil(t, set)
	require.Equal(t, 0, set.Len())
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)
	require.Equal(t, "Invalid configuration", entry.Message)

	query := []Pair{pair("b", "x"), pair("a", "1")}
	require.Equal(t, query, Transform(set, query))
}

func TestLoad_NilLogger(t *testing.T) {
	set := Load([]byte(`not json`), nil)
	require.Equal(t, 0, set.Len())
}

func TestLoader_DecodesOnce(t *testing.T) {
	source := &countingSource{payload: []byte(`{"a": {"add": {"value": "1"}}}`)}
	loader := NewLoader(source, zap.NewNop())
	require.Equal(t, 0, source.calls)

	var wg sync.WaitGroup
	sets := make([]*OperationSet, 8)
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i] = loader.OperationSet()
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, source.calls)
	for _, set := range sets {
		require.Same(t, sets[0], set)
	}
	require.Equal(t, 1, sets[0].Len())
}

func TestLoader_SourceError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	source := &countingSource{err: errors.New("read failed")}
	loader := NewLoader(source, zap.New(core))

	require.Equal(t, 0, loader.OperationSet().Len())
	require.Equal(t, 0, loader.OperationSet().Len())
	require.Equal(t, 1, source.calls)
	require.Equal(t, 1, logs.Len())
}

func TestLoader_NilSource(t *testing.T) {
	loader := NewLoader(nil, nil)
	require.Equal(t, 0, loader.OperationSet().Len())
}
