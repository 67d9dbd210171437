package domain

import "errors"

var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrCommandNotFound   = errors.New("command not found")
	ErrCyclicReference   = errors.New("cyclic variable reference")
	ErrRunNotFound       = errors.New("run not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrSetupInvalid      = errors.New("setup verification failed")
)
