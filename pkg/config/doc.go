// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags (`env`,
// `envDefault`, `envSeparator`) and their constraints with
// go-playground/validator tags (`validate`). Load parses and validates once
// per type and caches the result; Parse does the same work uncached.
package config
