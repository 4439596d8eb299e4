// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wall implements the tagged-variant wall abstraction: analytic
// implicit surfaces (sphere, plane, cylinder, cone, torus, convex
// polyhedron, swept tubes, a trefoil knot) and a caller-supplied escape
// hatch, each answering the two queries the engine needs -- containment
// and nearest tangent plane -- without dynamic dispatch in the common
// cases.
package wall

import "github.com/cpmech/vorothree/geom"

// ID is the caller-chosen, conventionally negative identifier recorded
// on any cell face produced by cutting with this wall's tangent plane.
type ID = int64

// Plane is a point on a tangent plane (Q) and its outward unit normal
// (Nu): the kept region is {x : Nu·(x-Q) ≤ 0}.
type Plane struct {
	Q, Nu geom.Point
}

// Kind discriminates the wall variants. Branch functions on Kind are
// meant to be inlined by the compiler; only Kind == KindUser goes
// through an interface method call in the hot loop.
type Kind int

const (
	KindPlane Kind = iota
	KindSphere
	KindCylinder
	KindCone
	KindTorus
	KindPolyhedron
	KindSweptTube
	KindTrefoil
	KindUser
)

// Surface is anything a caller can supply for KindUser: an
// implicit-surface object that knows whether it contains a point and,
// if so, what its nearest tangent plane there looks like.
type Surface interface {
	Contains(p geom.Point) bool
	NearestPlane(p geom.Point) (Plane, bool)
}

// Wall is the tagged-variant value type passed to the engine. Exactly
// one of the Kind-specific fields is meaningful for any given Kind; the
// zero value of the others is ignored. This mirrors a closed sum type
// without requiring a shared base class or runtime type assertions for
// the built-in variants.
type Wall struct {
	WallID ID
	Kind   Kind

	Plane      PlaneData
	Sphere     SphereData
	Cylinder   CylinderData
	Cone       ConeData
	Torus      TorusData
	Polyhedron PolyhedronData
	Sweep      SweptTubeData
	Trefoil    TrefoilData
	User       Surface
}

// Contains reports whether p is on the kept side of the wall.
func (o Wall) Contains(p geom.Point) bool {
	switch o.Kind {
	case KindPlane:
		return o.Plane.Contains(p)
	case KindSphere:
		return o.Sphere.Contains(p)
	case KindCylinder:
		return o.Cylinder.Contains(p)
	case KindCone:
		return o.Cone.Contains(p)
	case KindTorus:
		return o.Torus.Contains(p)
	case KindPolyhedron:
		return o.Polyhedron.Contains(p)
	case KindSweptTube:
		return o.Sweep.Contains(p)
	case KindTrefoil:
		return o.Trefoil.Contains(p)
	case KindUser:
		return o.User.Contains(p)
	}
	return true
}

// NearestPlane returns the tangent plane separating p from the wall
// surface, or ok=false if the wall reports "no cut needed" (p is deep
// enough inside the kept region that applying this wall would be a
// no-op regardless).
func (o Wall) NearestPlane(p geom.Point) (Plane, bool) {
	switch o.Kind {
	case KindPlane:
		return o.Plane.NearestPlane(p)
	case KindSphere:
		return o.Sphere.NearestPlane(p)
	case KindCylinder:
		return o.Cylinder.NearestPlane(p)
	case KindCone:
		return o.Cone.NearestPlane(p)
	case KindTorus:
		return o.Torus.NearestPlane(p)
	case KindPolyhedron:
		return o.Polyhedron.NearestPlane(p)
	case KindSweptTube:
		return o.Sweep.NearestPlane(p)
	case KindTrefoil:
		return o.Trefoil.NearestPlane(p)
	case KindUser:
		return o.User.NearestPlane(p)
	}
	return Plane{}, false
}
