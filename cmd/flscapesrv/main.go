// Command flscapesrv exposes flscape.Characterize over HTTP with Prometheus
// instrumentation and singleflight-backed request de-duplication.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flscape/flscape/internal/httpapi"
	"github.com/flscape/flscape/internal/metrics"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	readTimeout := flag.Duration("read-timeout", 5*time.Second, "request read timeout")
	writeTimeout := flag.Duration("write-timeout", 10*time.Second, "request write timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	m := metrics.New()
	handler := httpapi.NewHandler(m)

	mux := http.NewServeMux()
	mux.Handle("/v1/characterize", handler)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         *addr,
		Handler:      mux,
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
	}

	logger.Info("flscapesrv listening", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
