// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/wall"
)

// NewPlaneWall builds a flat wall keeping the half-space on the side of
// q opposite to outward normal nu.
func NewPlaneWall(id wall.ID, q, nu geom.Point) wall.Wall {
	return wall.Wall{WallID: id, Kind: wall.KindPlane, Plane: wall.PlaneData{Q: q, Nu: nu}}
}

// NewSphereWall builds a wall keeping the interior of a sphere.
func NewSphereWall(id wall.ID, center geom.Point, radius float64) wall.Wall {
	return wall.Wall{WallID: id, Kind: wall.KindSphere, Sphere: wall.SphereData{C: center, R: radius}}
}

// NewCylinderWall builds a wall keeping the interior of an infinite
// cylinder of the given radius, whose axis passes through a in
// direction d (need not be unit length).
func NewCylinderWall(id wall.ID, a, d geom.Point, radius float64) wall.Wall {
	return wall.Wall{WallID: id, Kind: wall.KindCylinder, Cylinder: wall.CylinderData{A: a, D: d.Unit(), R: radius}}
}

// NewConeWall builds a wall keeping the interior of an infinite cone
// with apex a, axis d (pointing into the cone) and the given half-angle
// in radians.
func NewConeWall(id wall.ID, a, d geom.Point, halfAngle float64) wall.Wall {
	return wall.Wall{WallID: id, Kind: wall.KindCone, Cone: wall.ConeData{A: a, D: d.Unit(), HalfAngle: halfAngle}}
}

// NewTorusWall builds a wall keeping the interior of a solid torus
// centred at c, whose ring lies in the plane through c perpendicular to
// d.
func NewTorusWall(id wall.ID, c, d geom.Point, rMajor, rTube float64) wall.Wall {
	return wall.Wall{WallID: id, Kind: wall.KindTorus, Torus: wall.TorusData{C: c, D: d.Unit(), Rmajor: rMajor, Rtube: rTube}}
}

// NewPolyhedronWall builds a wall keeping the intersection of the
// half-spaces {x : normals[i]·(x-points[i]) ≤ 0}.
func NewPolyhedronWall(id wall.ID, points, normals []geom.Point) wall.Wall {
	return wall.Wall{WallID: id, Kind: wall.KindPolyhedron, Polyhedron: wall.PolyhedronData{Points: points, Normals: normals}}
}

// NewUserWall wraps a caller-supplied Surface implementation.
func NewUserWall(id wall.ID, s wall.Surface) wall.Wall {
	return wall.Wall{WallID: id, Kind: wall.KindUser, User: s}
}
