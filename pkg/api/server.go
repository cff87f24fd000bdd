// Package api exposes the stream decoder over REST: upload a stream,
// read back its decoded record graph, or pull individual objects out of
// it by id.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(streams IStreamStore, config ServerConfig) error {
	// Initialize metrics
	metrics := NewMetrics()

	server := NewServer(streams, config, metrics)
	r := newRouter(server, metrics, config)

	// Start background metrics updater
	go server.startMetricsUpdater()

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting nrbf REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}

// newRouter wires middleware and routes for the given server
func newRouter(server *Server, metrics *Metrics, config ServerConfig) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Stream operations
		r.Post("/streams", metrics.InstrumentHandler("POST", "/api/v1/streams", server.handleUpload))
		r.Get("/streams", metrics.InstrumentHandler("GET", "/api/v1/streams", server.handleListStreams))
		r.Get("/streams/{id}", metrics.InstrumentHandler("GET", "/api/v1/streams/{id}", server.handleGetGraph))
		r.Get("/streams/{id}/objects/{objectID}", metrics.InstrumentHandler("GET", "/api/v1/streams/{id}/objects/{objectID}", server.handleGetObject))
		r.Delete("/streams/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/streams/{id}", server.handleDeleteStream))
	})

	return r
}
