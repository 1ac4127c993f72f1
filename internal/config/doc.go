// Package config provides configuration loading, merging, and validation
// for the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig]. The returned value is read-only
// for the lifetime of the process and is passed explicitly to every
// component that needs it.
package config
