// Package config provides environment-based configuration.
//
// Loads plain environment variables into a Config struct with defaults and
// validates required fields for production deployments.
package config
