// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"math"

	"github.com/cpmech/vorothree/geom"
)

// ConeData keeps the interior of an infinite single-nappe cone with
// apex A, unit axis direction D (pointing into the cone's interior) and
// half-angle HalfAngle (radians).
type ConeData struct {
	A, D      geom.Point
	HalfAngle float64
}

func (o ConeData) project(p geom.Point) (axial float64, perp geom.Point, radial float64) {
	w := p.Sub(o.A)
	axial = w.Dot(o.D)
	perp = w.Sub(o.D.Scale(axial))
	radial = perp.Norm()
	return
}

// Contains reports whether p lies within the cone.
func (o ConeData) Contains(p geom.Point) bool {
	axial, _, radial := o.project(p)
	if axial < 0 {
		return false
	}
	return radial <= axial*math.Tan(o.HalfAngle)
}

// NearestPlane returns the tangent plane at the point on the cone
// surface sharing p's axial projection, per §4.2: "tangent plane at
// closest axis projection".
func (o ConeData) NearestPlane(p geom.Point) (Plane, bool) {
	axial, perp, radial := o.project(p)
	if axial < 0 {
		axial = 0
	}
	var rhat geom.Point
	if radial < 1e-300 {
		rhat = arbitraryPerp(o.D)
	} else {
		rhat = perp.Scale(1.0 / radial)
	}
	sa, ca := math.Sin(o.HalfAngle), math.Cos(o.HalfAngle)
	ta := math.Tan(o.HalfAngle)
	q := o.A.Add(o.D.Scale(axial)).Add(rhat.Scale(axial * ta))
	nu := rhat.Scale(ca).Sub(o.D.Scale(sa))
	return Plane{Q: q, Nu: nu.Unit()}, true
}
