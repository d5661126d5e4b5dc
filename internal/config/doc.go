// Package config defines the settings used by the statebox binaries and
// provides helpers to load them from YAML, override them from STATEBOX_*
// environment variables, validate them and save them back.
package config
