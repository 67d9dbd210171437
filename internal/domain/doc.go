// Package domain defines the core entities and interfaces for envrun.
//
// This package contains the Run audit record, the repository interface
// that defines the contract for run history access, and the sentinel
// errors used to classify fatal failures across the application.
package domain
