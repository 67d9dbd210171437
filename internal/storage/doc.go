// Package storage implements the run history repository on bolthold.
package storage
