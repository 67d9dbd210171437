// Package app wires configuration, environment loading, verification,
// run history and dispatch together and manages the database lifecycle.
//
// Execution is strictly sequential: load, export, verify, report,
// record, dispatch, wait.
package app
