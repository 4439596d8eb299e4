// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import "github.com/cpmech/vorothree/geom"

// SphereData keeps the interior of a sphere of radius R centred at C.
type SphereData struct {
	C geom.Point
	R float64
}

// Contains reports whether p lies within the sphere.
func (o SphereData) Contains(p geom.Point) bool {
	return p.DistSq(o.C) <= o.R*o.R
}

// NearestPlane returns the plane tangent to the sphere at the point
// where the ray from C through p meets the surface.
func (o SphereData) NearestPlane(p geom.Point) (Plane, bool) {
	dir := p.Sub(o.C)
	if dir.NormSq() < 1e-300 {
		dir = geom.New(1, 0, 0)
	} else {
		dir = dir.Unit()
	}
	q := o.C.Add(dir.Scale(o.R))
	return Plane{Q: q, Nu: dir}, true
}
