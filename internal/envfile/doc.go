// Package envfile loads dotenv-style configuration files into the
// process environment.
//
// Parsing is delegated to godotenv; ${VAR} interpolation is an explicit
// bounded-depth pass over the parsed map so cyclic references fail
// cleanly instead of recursing. Export snapshots the allow-listed
// variables the dispatched command will inherit.
package envfile
