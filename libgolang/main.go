package main

import (
	"fmt"
	"os"

	"github.com/envoyproxy/envoy/contrib/golang/filters/http/source/go/pkg/http"

	"github.com/rashpile/go-envoy-query-rewrite/filter"
	"github.com/rashpile/go-envoy-query-rewrite/metrics"
)

func init() {
	// Metrics are optional; the filter keeps working without them
	if err := metrics.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] failed to initialize metrics: %v\n", filter.Name, err)
	}

	http.RegisterHttpFilterFactoryAndConfigParser(filter.Name, filter.FilterFactory, &filter.Parser{})
}

func main() {}
