package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrUnknownHost indicates host.kind names no host this build can open.
	ErrUnknownHost = errors.New("unknown host")

	// ErrPlatformInit indicates the platform refused to initialize.
	ErrPlatformInit = errors.New("platform initialization failed")
)

// InitError reports which component failed during New.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
