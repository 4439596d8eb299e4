// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package verr defines the error kinds shared across the public
// surface of the tessellation library (§7 of the design): the
// recoverable ConfigError, IdNotFound and OutOfDomain, and the fatal
// GeometryDefect and Cancelled conditions.
package verr

import "fmt"

// ConfigError reports invalid construction parameters: inverted or
// degenerate bounds, non-positive bin/octree counts, an unknown index
// kind, or a malformed coordinate list. Wall parameters are not
// validated, so a wall with non-finite parameters is not reported.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "vorothree: config error: " + e.Reason }

// Configf builds a ConfigError with a formatted reason.
func Configf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IdNotFoundError reports an operation addressed to a generator id that
// was never inserted, or has since been removed.
type IdNotFoundError struct {
	ID int64
}

func (e *IdNotFoundError) Error() string { return fmt.Sprintf("vorothree: id not found: %d", e.ID) }

// OutOfDomainError reports a generator inserted outside the bounding
// box under the "reject" policy (this library's chosen policy for
// insert/move; bulk loading via SetGenerators clamps instead -- see
// DESIGN.md).
type OutOfDomainError struct {
	X, Y, Z float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("vorothree: point (%g,%g,%g) is outside the bounding box", e.X, e.Y, e.Z)
}

// GeometryDefectError reports an internal combinatorial invariant
// violation while building the cell for SeedID. This is a bug, not a
// recoverable condition: it aborts the whole Calculate call, in serial
// and parallel mode alike, and no cells from that call are kept.
type GeometryDefectError struct {
	SeedID int64
	Reason string
}

func (e *GeometryDefectError) Error() string {
	return fmt.Sprintf("vorothree: geometry defect while building cell for seed %d: %s", e.SeedID, e.Reason)
}

// CancelledError reports that a caller-supplied cancellation token fired
// between seeds during Calculate/Relax.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "vorothree: cancelled" }
