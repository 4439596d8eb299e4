// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import "github.com/cpmech/vorothree/geom"

// CylinderData keeps the interior of an infinite cylinder of radius R
// whose axis passes through A in unit direction D.
type CylinderData struct {
	A, D geom.Point // D must be unit length
	R    float64
}

func (o CylinderData) radial(p geom.Point) (axial float64, perp geom.Point) {
	w := p.Sub(o.A)
	axial = w.Dot(o.D)
	perp = w.Sub(o.D.Scale(axial))
	return
}

// Contains reports whether p lies within the cylinder.
func (o CylinderData) Contains(p geom.Point) bool {
	_, perp := o.radial(p)
	return perp.NormSq() <= o.R*o.R
}

// NearestPlane returns the tangent plane at the closest point on the
// cylinder's surface to the axial projection of p.
func (o CylinderData) NearestPlane(p geom.Point) (Plane, bool) {
	axial, perp := o.radial(p)
	dir := perp
	if dir.NormSq() < 1e-300 {
		dir = arbitraryPerp(o.D)
	} else {
		dir = dir.Unit()
	}
	q := o.A.Add(o.D.Scale(axial)).Add(dir.Scale(o.R))
	return Plane{Q: q, Nu: dir}, true
}

// arbitraryPerp returns an arbitrary unit vector orthogonal to d.
func arbitraryPerp(d geom.Point) geom.Point {
	n := d.Unit()
	ref := geom.New(1, 0, 0)
	if abs(n.X) > 0.9 {
		ref = geom.New(0, 1, 0)
	}
	return ref.Sub(n.Scale(ref.Dot(n))).Unit()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
