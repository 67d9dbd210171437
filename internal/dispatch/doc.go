// Package dispatch runs the external test command synchronously with an
// explicit environment and working directory, capturing the exit code
// for propagation.
package dispatch
