// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
)

// ErrSurface is the class of every error returned by this package.
var ErrSurface = errors.New("surface")

var (
	// ErrNoBackendAvailable is returned when no surface backends are
	// registered or available on the current system.
	ErrNoBackendAvailable = fmt.Errorf("%w: no backend available", ErrSurface)

	// ErrClosed is returned when a surface is used after Close.
	ErrClosed = fmt.Errorf("%w: closed", ErrSurface)
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// Unwrap returns ErrSurface.
func (e *BackendNotFoundError) Unwrap() error { return ErrSurface }

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// Unwrap returns ErrSurface.
func (e *BackendUnavailableError) Unwrap() error { return ErrSurface }
