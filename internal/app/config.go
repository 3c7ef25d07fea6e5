package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"mixget/internal/catalog"
	"mixget/internal/services/export"
)

// DefaultEnvFile is loaded when no env file is named. It may be absent.
const DefaultEnvFile = ".env"

// Environment variables read by LoadConfig.
const (
	EnvBaseURL  = "MIXGET_BASE_URL"
	EnvAPIKey   = "MIXGET_API_KEY"
	EnvToken    = "MIXGET_TOKEN"
	EnvOutput   = "MIXGET_OUTPUT"
	EnvManifest = "MIXGET_MANIFEST"
	EnvMaxPolls = "MIXGET_MAX_POLLS"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	BaseURL      string       // API root; empty selects the public service
	APIKey       string       // X-Api-Key value; empty selects the web client's key
	Token        string       // bearer token of an authenticated session
	OutputPath   string       // download directory; empty is the working directory
	ManifestPath string       // id→description JSON for "all" mode
	MaxPolls     int          // monitor polls per job; 0 is unbounded
	HTTP         *http.Client // optional; defaults to http.DefaultClient
}

// LoadConfig reads envFile into the process environment without overriding
// variables already set, then builds a Config from MIXGET_* variables.
// An empty envFile loads DefaultEnvFile if it exists.
func LoadConfig(envFile string) (Config, error) {
	if envFile == "" {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		BaseURL:      os.Getenv(EnvBaseURL),
		APIKey:       os.Getenv(EnvAPIKey),
		Token:        os.Getenv(EnvToken),
		OutputPath:   os.Getenv(EnvOutput),
		ManifestPath: os.Getenv(EnvManifest),
		MaxPolls:     export.DefaultMaxPolls,
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = catalog.DefaultManifestPath
	}
	if v := os.Getenv(EnvMaxPolls); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: want a non-negative integer, got %q", EnvMaxPolls, v)
		}
		cfg.MaxPolls = n
	}
	return cfg, nil
}

// ExportConfig derives the export worker settings.
func (c Config) ExportConfig() export.Config {
	ec := export.DefaultConfig()
	ec.ManifestPath = c.ManifestPath
	ec.MaxPolls = c.MaxPolls
	return ec
}
