package filter

import (
	"fmt"
	"time"

	"github.com/envoyproxy/envoy/contrib/golang/common/go/api"
	"go.uber.org/zap"

	"github.com/rashpile/go-envoy-query-rewrite/metrics"
)

// Filter implements the Envoy HTTP filter that rewrites request query strings
type Filter struct {
	config    *Config
	callbacks api.FilterCallbackHandler
	query     *QueryHelper
	logger    *zap.Logger
}

// NewFilter creates a new filter instance
func NewFilter(config *Config, callbacks api.FilterCallbackHandler) *Filter {
	return &Filter{
		config:    config,
		callbacks: callbacks,
		query:     NewQueryHelper(),
		logger:    GetLogger(),
	}
}

// DecodeHeaders is called when request headers are received.
// The request is always forwarded.
func (f *Filter) DecodeHeaders(header api.RequestHeaderMap, endStream bool) api.StatusType {
	f.rewriteRequest(header)
	return api.Continue
}

// rewriteRequest applies the configured operations to the target's query
// and reports the metrics result label.
func (f *Filter) rewriteRequest(target RequestTarget) string {
	ops := f.config.Operations()
	if ops.Len() == 0 {
		metrics.RecordRequest(metrics.ResultPassThrough, 0)
		return metrics.ResultPassThrough
	}

	start := time.Now()
	original := target.Path()
	rewritten, changed := f.query.RewriteTarget(original, ops)

	result := metrics.ResultUnchanged
	if changed {
		target.SetPath(rewritten)
		result = metrics.ResultRewritten
	}
	metrics.RecordRequest(result, time.Since(start).Seconds())

	if ce := f.logger.Check(zap.DebugLevel, "Query rewrite applied"); ce != nil {
		path, _, _ := f.query.SplitTarget(original)
		ce.Write(
			zap.String("path", path),
			zap.String("result", result),
			zap.Int("operations", ops.Len()),
			zap.Int("pairs_before", len(f.query.ExtractQueryPairs(original))),
			zap.Int("pairs_after", len(f.query.ExtractQueryPairs(rewritten))),
		)
	}

	return result
}

// EncodeHeaders is called when response headers are being sent
func (f *Filter) EncodeHeaders(header api.ResponseHeaderMap, endStream bool) api.StatusType {
	return api.Continue
}

func (f *Filter) DecodeData(buffer api.BufferInstance, endStream bool) api.StatusType {
	return api.Continue
}

func (f *Filter) EncodeData(buffer api.BufferInstance, endStream bool) api.StatusType {
	return api.Continue
}

func (f *Filter) DecodeTrailers(trailers api.RequestTrailerMap) api.StatusType {
	return api.Continue
}

func (f *Filter) EncodeTrailers(trailers api.ResponseTrailerMap) api.StatusType {
	return api.Continue
}

func (f *Filter) OnLog(reqHeaders api.RequestHeaderMap, reqTrailers api.RequestTrailerMap,
	respHeaders api.ResponseHeaderMap, respTrailers api.ResponseTrailerMap) {
}

func (f *Filter) OnLogDownstreamPeriodic(reqHeaders api.RequestHeaderMap, reqTrailers api.RequestTrailerMap,
	respHeaders api.ResponseHeaderMap, respTrailers api.ResponseTrailerMap) {
}

func (f *Filter) OnLogDownstreamStart(reqHeaders api.RequestHeaderMap) {
}

func (f *Filter) OnDestroy(reason api.DestroyReason) {
}

func (f *Filter) OnStreamComplete() {
}

// FilterFactory creates a new Filter instance
func FilterFactory(c interface{}, callbacks api.FilterCallbackHandler) api.StreamFilter {
	config, ok := c.(*Config)
	if !ok {
		panic(fmt.Sprintf("unexpected config type %T", c))
	}
	return NewFilter(config, callbacks)
}
