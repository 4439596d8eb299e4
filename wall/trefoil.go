// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"math"

	"github.com/cpmech/vorothree/geom"
)

// TrefoilData keeps the interior of a tube of radius Radius swept along
// a trefoil knot centreline, centred and scaled as given to NewTrefoil. It
// is a special case of a closed swept tube whose centreline is
// generated parametrically rather than supplied by the caller.
type TrefoilData struct {
	tube SweptTubeData
}

// NewTrefoil builds a trefoil-knot wall by sampling the standard
// parametrisation
//
//	x(t) = sin(t) + 2 sin(2t)
//	y(t) = cos(t) - 2 cos(2t)
//	z(t) = -sin(3t)
//
// for t in [0,2π), scaling and centring it, then treating the result as
// a closed swept tube.
func NewTrefoil(center geom.Point, scale, radius float64, samples int) TrefoilData {
	pts := make([]geom.Point, samples)
	for i := 0; i < samples; i++ {
		t := 2 * math.Pi * float64(i) / float64(samples)
		x := math.Sin(t) + 2*math.Sin(2*t)
		y := math.Cos(t) - 2*math.Cos(2*t)
		z := -math.Sin(3 * t)
		pts[i] = center.Add(geom.New(x, y, z).Scale(scale))
	}
	return TrefoilData{tube: SweptTubeData{Samples: pts, Radius: radius, Closed: true}}
}

// Contains reports whether p lies within the knot's tube.
func (o TrefoilData) Contains(p geom.Point) bool { return o.tube.Contains(p) }

// NearestPlane returns the tangent plane at the tube surface point
// nearest p.
func (o TrefoilData) NearestPlane(p geom.Point) (Plane, bool) { return o.tube.NearestPlane(p) }
