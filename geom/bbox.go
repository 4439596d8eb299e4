// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// BBox is an axis-aligned bounding box with Min ≤ Max componentwise.
type BBox struct {
	Min, Max Point
}

// NewBBox builds a BBox from two corners, reordering components so that
// Min ≤ Max holds regardless of the order the caller supplied.
func NewBBox(a, b Point) BBox {
	return BBox{
		Min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// Empty reports whether the box has zero or negative extent along any axis.
func (o BBox) Empty() bool {
	return o.Min.X >= o.Max.X || o.Min.Y >= o.Max.Y || o.Min.Z >= o.Max.Z
}

// Extent returns Max-Min.
func (o BBox) Extent() Point { return o.Max.Sub(o.Min) }

// Diameter returns the length of the box's space diagonal, used to scale
// numerical tolerances across the package.
func (o BBox) Diameter() float64 { return o.Min.Dist(o.Max) }

// Volume returns the box's volume.
func (o BBox) Volume() float64 {
	e := o.Extent()
	return e.X * e.Y * e.Z
}

// Center returns the box's centroid.
func (o BBox) Center() Point { return o.Min.Mid(o.Max) }

// Contains reports whether p lies inside the box, within eps.
func (o BBox) Contains(p Point, eps float64) bool {
	return p.X >= o.Min.X-eps && p.X <= o.Max.X+eps &&
		p.Y >= o.Min.Y-eps && p.Y <= o.Max.Y+eps &&
		p.Z >= o.Min.Z-eps && p.Z <= o.Max.Z+eps
}

// Clamp moves p to the nearest point inside the box.
func (o BBox) Clamp(p Point) Point {
	return Point{
		clampF(p.X, o.Min.X, o.Max.X),
		clampF(p.Y, o.Min.Y, o.Max.Y),
		clampF(p.Z, o.Min.Z, o.Max.Z),
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistSqTo returns the squared distance from p to the nearest point of the
// box; zero if p is inside. Used by spatial-index shell enumerators as the
// lower bound on the distance from a query point to anything stored under
// this box.
func (o BBox) DistSqTo(p Point) float64 {
	q := o.Clamp(p)
	return p.DistSq(q)
}

// SubBox partitions the box into nx·ny·nz equal sub-boxes and returns the
// one owning indices (i,j,k).
func (o BBox) SubBox(i, j, k, nx, ny, nz int) BBox {
	e := o.Extent()
	dx, dy, dz := e.X/float64(nx), e.Y/float64(ny), e.Z/float64(nz)
	lo := Point{o.Min.X + float64(i)*dx, o.Min.Y + float64(j)*dy, o.Min.Z + float64(k)*dz}
	hi := Point{o.Min.X + float64(i+1)*dx, o.Min.Y + float64(j+1)*dy, o.Min.Z + float64(k+1)*dz}
	return BBox{Min: lo, Max: hi}
}
