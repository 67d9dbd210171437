// Package config handles tool configuration loading and validation.
//
// Settings are read from ENVRUN_* environment variables with sensible
// defaults, then overlaid with an optional YAML profile file. The export
// allow-list and the secret subset are fixed at compile time; only the
// dispatch target (env file, work dir, command) is configurable.
package config
