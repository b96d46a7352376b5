// Package config loads and validates reader configuration.
//
// Configuration is layered: built-in defaults, then zero or more JSON or
// YAML files (later layers override earlier ones), then LINESTREAM_*
// environment variables. Validation resolves every symbolic setting
// (charset, policy, precision) so a bad value surfaces before any line
// is parsed.
package config
