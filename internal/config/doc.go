// Package config loads, validates and saves the application configuration.
// Settings are read from a YAML file with Viper; byte sizes are parsed with go-humanize.
package config
