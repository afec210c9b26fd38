// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Database drivers accepted in [DB.Driver]. They are the database/sql driver
// names registered by pgx and go-sqlite3.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Defaults applied when no source sets the corresponding field.
const (
	DefaultServerAddress     = "localhost:8080"
	DefaultAdapterAddress    = "http://localhost:8080"
	DefaultSearchEndpoint    = "/api/search-data-pg"
	DefaultAltSearchEndpoint = "/api/search-data-mongo"
	DefaultVersion           = "dev"
)

// StructuredConfig is the top-level configuration shared by the search server
// and the terminal client. It is assembled from command-line flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-wide settings.
	App App `envPrefix:"APP_"`

	// Storage holds the borrower database settings used by the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the search backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds settings only the terminal client reads.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the borrower database.
type DB struct {
	// DSN is the connection string: a PostgreSQL URL for the pgx driver or a
	// file path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the database/sql driver, "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Server holds network and timeout settings of the search backend.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter describes how the client reaches the search backend.
type Adapter struct {
	// HTTPAddress is the base URL of the backend, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds an outbound search request. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SearchEndpoint is the path of the primary (PostgreSQL) search form.
	// Env: ADAPTER_SEARCH_ENDPOINT
	SearchEndpoint string `env:"SEARCH_ENDPOINT"`

	// AltSearchEndpoint is the path used by the alternate form variant.
	// Env: ADAPTER_ALT_SEARCH_ENDPOINT
	AltSearchEndpoint string `env:"ALT_SEARCH_ENDPOINT"`
}

// Client holds terminal client settings.
type Client struct {
	// LogFile is where the client writes its logs. Empty means a file next to
	// the executable.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// defaultConfig returns the values used when no other source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultVersion},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{HTTPAddress: DefaultServerAddress},
		Adapter: Adapter{
			HTTPAddress:       DefaultAdapterAddress,
			SearchEndpoint:    DefaultSearchEndpoint,
			AltSearchEndpoint: DefaultAltSearchEndpoint,
		},
	}
}

// GetStructuredConfig loads and validates the server configuration.
//
// Sources are merged field by field; for each field the first source that
// sets it wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path taken from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
