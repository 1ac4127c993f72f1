// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied after every other source has been merged.
const (
	DefaultHTTPAddress  = ":3001"
	DefaultSheetsBase   = "https://docs.google.com"
	DefaultJSONFilePath = "config.json"
)

// StructuredConfig is the top-level configuration of the gateway. It is
// built once at startup by merging environment variables, command-line flags
// and a JSON file, and is never mutated afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Upstream holds the addresses and credentials of the services requests
	// are forwarded to.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the path to the JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	// When empty, DefaultJSONFilePath is tried and skipped if absent.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Upstream holds the outbound targets of the gateway.
type Upstream struct {
	// APIBase is the base URL of the data-backend REST API
	// (e.g. "https://xyz.supabase.co/rest/v1").
	// Env: UPSTREAM_API
	APIBase string `env:"API"`

	// APIKey is sent as the "apikey" header on every backend API call.
	// Env: UPSTREAM_API_KEY
	APIKey string `env:"API_KEY"`

	// SheetsBase is the origin of the public spreadsheet export endpoint.
	// Env: UPSTREAM_SHEETS_BASE
	SheetsBase string `env:"SHEETS_BASE"`

	// RequestTimeout bounds a single outbound call. Zero means no timeout.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds settings of the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. ":3001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Upstream: Upstream{
			SheetsBase: DefaultSheetsBase,
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the gateway
// configuration from the process environment and command-line arguments.
//
// Sources in priority order (first non-zero field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
