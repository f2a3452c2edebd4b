// Package metrics provides the Prometheus metrics server for the query-rewrite filter.
package metrics

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PortEnv names the environment variable holding the metrics listen port.
const PortEnv = "METRICS_PORT"

var (
	initOnce sync.Once
	initErr  error
)

// Init starts the metrics server if METRICS_PORT is set.
// Safe to call multiple times - only initializes once.
// An empty METRICS_PORT disables metrics and is not an error.
func Init() error {
	initOnce.Do(func() {
		port := os.Getenv(PortEnv)
		if port == "" {
			return
		}

		if _, err := strconv.Atoi(port); err != nil {
			initErr = fmt.Errorf("invalid %s '%s': must be a number", PortEnv, port)
			return
		}

		initErr = startServer(port)
	})
	return initErr
}

// NewRegistry builds a registry with runtime, process and rewrite collectors.
// A private registry keeps this plugin from clashing with other .so plugins
// loaded into the same Envoy.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	RegisterRewriteMetrics(registry)
	return registry
}

func startServer(port string) error {
	registry := NewRegistry()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	// init() must not block
	go func() {
		fmt.Fprintf(os.Stderr, "[metrics] starting server on :%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "[metrics] server error: %v\n", err)
		}
	}()

	return nil
}
