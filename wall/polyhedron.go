// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import "github.com/cpmech/vorothree/geom"

// PolyhedronData keeps the intersection of the half-spaces
// {x : Normals[i]·(x-Points[i]) ≤ 0}.
type PolyhedronData struct {
	Points, Normals []geom.Point
}

// Contains reports whether p satisfies every half-space.
func (o PolyhedronData) Contains(p geom.Point) bool {
	for i := range o.Points {
		if o.Normals[i].Dot(p.Sub(o.Points[i])) > 0 {
			return false
		}
	}
	return true
}

// NearestPlane returns the most-violated half-space at p (or, if p
// already satisfies all of them, the most nearly-violated one -- the
// binding constraint, which is what a subsequent cut would need).
func (o PolyhedronData) NearestPlane(p geom.Point) (Plane, bool) {
	if len(o.Points) == 0 {
		return Plane{}, false
	}
	best := 0
	bestVal := o.Normals[0].Dot(p.Sub(o.Points[0]))
	for i := 1; i < len(o.Points); i++ {
		v := o.Normals[i].Dot(p.Sub(o.Points[i]))
		if v > bestVal {
			bestVal = v
			best = i
		}
	}
	return Plane{Q: o.Points[best], Nu: o.Normals[best]}, true
}
