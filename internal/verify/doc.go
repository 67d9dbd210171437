// Package verify performs pre-dispatch setup checks.
//
// Missing credentials or an unresolvable command are errors that abort
// the run. Optional variables and overly permissive env file modes only
// produce warnings. The work directory is checked by dispatch so that a
// missing directory keeps its own error kind.
package verify
