// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import "github.com/cpmech/vorothree/geom"

// PlaneData is a flat wall: the kept region is the half-space on the
// side of Q opposite to the outward normal Nu.
type PlaneData struct {
	Q, Nu geom.Point
}

// Contains reports whether p is on the kept side of the plane.
func (o PlaneData) Contains(p geom.Point) bool {
	return o.Nu.Dot(p.Sub(o.Q)) <= 0
}

// NearestPlane always returns the wall's own plane: a flat wall's
// tangent plane does not depend on the query point.
func (o PlaneData) NearestPlane(p geom.Point) (Plane, bool) {
	return Plane{Q: o.Q, Nu: o.Nu}, true
}
