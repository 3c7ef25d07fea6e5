package app

import (
	"net/http"

	"mixget/internal/metrics"
	"mixget/internal/remote"
	"mixget/internal/services/export"
	"mixget/internal/store"
)

// Wire bundles the clients, stores and metrics shared by the CLI commands.
type Wire struct {
	HTTP    *http.Client
	Metrics *metrics.Recorder
	Client  *remote.Client
	API     *remote.API
	Writer  *store.ModelWriter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	rec := metrics.New()

	// Resilient client, shared by every typed call
	rc := remote.NewClient(httpClient, rec)
	api := remote.NewAPI(cfg.BaseURL, cfg.APIKey, cfg.Token, rc)

	return &Wire{
		HTTP:    httpClient,
		Metrics: rec,
		Client:  rc,
		API:     api,
		Writer:  store.NewModelWriter(),
	}, nil
}

// Exporter returns an export worker bound to the wired API, writer and metrics.
func (w *Wire) Exporter(cfg export.Config, opts ...export.Option) *export.Worker {
	opts = append([]export.Option{export.WithMetrics(w.Metrics)}, opts...)
	return export.New(w.API, w.Writer, cfg, opts...)
}

// Close releases idle connections held by the HTTP client.
func (w *Wire) Close() {
	w.HTTP.CloseIdleConnections()
}
