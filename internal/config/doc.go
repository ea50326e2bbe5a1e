// Package config loads pd0diag processing settings.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// environment variables prefixed with PD0_ (for example
// PD0_LOGGING_LEVEL=debug or PD0_DECODE_WINDOW=8000). The result is
// validated before use.
package config
