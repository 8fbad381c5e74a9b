// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It covers the HTTP server, the five mock data sources, and the demo
// credential table.
package config
