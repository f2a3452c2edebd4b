package rewrite

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rashpile/go-envoy-query-rewrite/metrics"
)

// PayloadSource supplies the raw configuration payload.
type PayloadSource interface {
	Payload() ([]byte, error)
}

// Load decodes payload. A payload that cannot be decoded is logged once at
// warn level and yields an empty set, so a broken configuration turns the
// filter into a pass-through instead of failing requests.
func Load(payload []byte, logger *zap.Logger) *OperationSet {
	if logger == nil {
		logger = zap.NewNop()
	}

	set, err := Decode(payload)
	if err != nil {
		logger.Warn("Invalid configuration", zap.Error(err))
		metrics.RecordConfigLoad(false, 0)
		return NewOperationSet()
	}

	metrics.RecordConfigLoad(true, set.Len())
	logger.Debug("Loaded query rewrite operations",
		zap.Int("operations", set.Len()),
		zap.Strings("parameters", set.Names()))
	return set
}

// Loader decodes the payload of a source on first use and serves the same
// OperationSet afterwards.
type Loader struct {
	source PayloadSource
	logger *zap.Logger

	once sync.Once
	set  *OperationSet
}

// NewLoader creates a loader for source. Nothing is read until OperationSet is called.
func NewLoader(source PayloadSource, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, logger: logger}
}

// OperationSet returns the loaded set, loading it on the first call.
func (l *Loader) OperationSet() *OperationSet {
	l.once.Do(func() {
		if l.source == nil {
			l.set = NewOperationSet()
			return
		}
		payload, err := l.source.Payload()
		if err != nil {
			l.logger.Warn("Invalid configuration", zap.Error(err))
			metrics.RecordConfigLoad(false, 0)
			l.set = NewOperationSet()
			return
		}
		l.set = Load(payload, l.logger)
	})
	return l.set
}
