// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import "github.com/cpmech/vorothree/geom"

// TorusData keeps the interior of the solid tube of a torus of major
// radius Rmajor and tube radius Rtube, whose centreline ring lies in
// the plane through C perpendicular to the unit axis D.
type TorusData struct {
	C, D          geom.Point
	Rmajor, Rtube float64
}

// ringPoint returns the point on the centreline circle closest to p.
func (o TorusData) ringPoint(p geom.Point) geom.Point {
	w := p.Sub(o.C)
	axial := w.Dot(o.D)
	radialVec := w.Sub(o.D.Scale(axial))
	var rhat geom.Point
	if radialVec.NormSq() < 1e-300 {
		rhat = arbitraryPerp(o.D)
	} else {
		rhat = radialVec.Unit()
	}
	return o.C.Add(rhat.Scale(o.Rmajor))
}

// Contains reports whether p lies within the solid torus.
func (o TorusData) Contains(p geom.Point) bool {
	ring := o.ringPoint(p)
	return p.DistSq(ring) <= o.Rtube*o.Rtube
}

// NearestPlane returns the tangent plane at the point of the tube
// surface nearest the centreline point closest to p.
func (o TorusData) NearestPlane(p geom.Point) (Plane, bool) {
	ring := o.ringPoint(p)
	dir := p.Sub(ring)
	if dir.NormSq() < 1e-300 {
		dir = arbitraryPerp(o.D)
	} else {
		dir = dir.Unit()
	}
	q := ring.Add(dir.Scale(o.Rtube))
	return Plane{Q: q, Nu: dir}, true
}
