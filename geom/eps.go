// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// DefaultAbsEps is the smallest absolute tolerance used when no bounding
// box diameter is available to scale it.
const DefaultAbsEps = 1e-12

// Eps holds the numerical tolerance policy shared by a tessellation: an
// absolute floor scaled up proportionally to the size of the domain so
// that plane-side classifications remain meaningful whether the domain
// spans micrometres or kilometres.
type Eps struct {
	Abs float64 // absolute tolerance used to classify a plane evaluation as "on-plane"
}

// NewEps builds an Eps from a bounding-box diameter, scaling the default
// absolute tolerance proportionally; a diameter of zero falls back to
// DefaultAbsEps.
func NewEps(diameter float64) Eps {
	e := DefaultAbsEps
	if diameter > 0 {
		e = DefaultAbsEps * maxF(1.0, diameter)
	}
	return Eps{Abs: e}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Side classifies a signed plane evaluation value against the tolerance:
// -1 strictly negative, 0 on-plane (within ±Abs), +1 strictly positive.
func (o Eps) Side(v float64) int {
	switch {
	case v < -o.Abs:
		return -1
	case v > o.Abs:
		return 1
	default:
		return 0
	}
}
