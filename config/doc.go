// Package config loads and validates application configuration from an
// optional YAML file, environment variables, and built-in defaults.
package config
