package filter

import (
	"fmt"
	"os"

	xds "github.com/cncf/xds/go/xds/type/v3"
	"github.com/envoyproxy/envoy/contrib/golang/common/go/api"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/rashpile/go-envoy-query-rewrite/rewrite"
	"github.com/rashpile/go-envoy-query-rewrite/store"
)

// Parser parses the filter configuration
type Parser struct {
}

// Parse parses the filter configuration from Envoy.
//
// Only a non-TypedStruct config is rejected. Problems with the operations
// themselves are reported as a warning on first use and leave the filter as a
// pass-through.
func (p *Parser) Parse(any *anypb.Any, callbacks api.ConfigCallbackHandler) (interface{}, error) {
	configStruct := &xds.TypedStruct{}
	if err := any.UnmarshalTo(configStruct); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	return p.parseValues(configStruct.Value.AsMap()), nil
}

func (p *Parser) parseValues(v map[string]interface{}) *Config {
	logger := GetLogger()

	var conf *Config
	if raw, ok := v[KeyOperations]; ok {
		// protobuf Struct does not keep key order, so the operations travel as a JSON string
		if operations, ok := raw.(string); ok {
			conf = NewConfig("inline", store.InlineSource(operations))
		} else {
			conf = NewConfig("inline", failedSource{
				err: fmt.Errorf("%w: %s must be a JSON string, got %T", rewrite.ErrConfigDecode, KeyOperations, raw),
			})
		}
	} else if path := operationsFile(v); path != "" {
		source, err := store.NewFileSource(path)
		if err != nil {
			conf = NewConfig("file:"+path, failedSource{err: err})
		} else {
			conf = NewConfig("file:"+path, source)
		}
	} else {
		conf = NewConfig("", nil)
	}

	logger.Info("Parsed query rewrite config",
		zap.String("version", Version),
		zap.String("git_commit", GitCommit),
		zap.String("source", conf.Source),
		zap.Bool("pass_through", !conf.HasSource()))

	return conf
}

// operationsFile returns the configured operations file; the environment wins over the config.
func operationsFile(v map[string]interface{}) string {
	if path := os.Getenv(EnvOperationsFile); path != "" {
		return path
	}
	if path, ok := v[KeyOperationsFile].(string); ok {
		return path
	}
	return ""
}

// Merge merges parent and child configurations.
// A child that configures operations replaces the parent's entirely.
func (p *Parser) Merge(parent interface{}, child interface{}) interface{} {
	parentConfig := parent.(*Config)
	childConfig := child.(*Config)

	if childConfig.HasSource() {
		return childConfig
	}
	return parentConfig
}
