// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the geometric primitives shared by the cell,
// wall and spatial index packages: points, bounding boxes and the
// tolerance policy used throughout the tessellation engine.
package geom

import "math"

// Point is a position or free vector in ℝ³ stored in double precision.
type Point struct {
	X, Y, Z float64
}

// New returns a new Point with the given coordinates.
func New(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Add returns o+p.
func (o Point) Add(p Point) Point { return Point{o.X + p.X, o.Y + p.Y, o.Z + p.Z} }

// Sub returns o-p.
func (o Point) Sub(p Point) Point { return Point{o.X - p.X, o.Y - p.Y, o.Z - p.Z} }

// Scale returns o*s.
func (o Point) Scale(s float64) Point { return Point{o.X * s, o.Y * s, o.Z * s} }

// Negate returns -o.
func (o Point) Negate() Point { return Point{-o.X, -o.Y, -o.Z} }

// Mid returns the midpoint between o and p.
func (o Point) Mid(p Point) Point { return o.Add(p).Scale(0.5) }

// Dot returns the dot product o·p.
func (o Point) Dot(p Point) float64 { return o.X*p.X + o.Y*p.Y + o.Z*p.Z }

// Cross returns the cross product o×p.
func (o Point) Cross(p Point) Point {
	return Point{
		o.Y*p.Z - o.Z*p.Y,
		o.Z*p.X - o.X*p.Z,
		o.X*p.Y - o.Y*p.X,
	}
}

// NormSq returns ‖o‖².
func (o Point) NormSq() float64 { return o.Dot(o) }

// Norm returns ‖o‖.
func (o Point) Norm() float64 { return math.Sqrt(o.NormSq()) }

// DistSq returns the squared distance between o and p.
func (o Point) DistSq(p Point) float64 { return o.Sub(p).NormSq() }

// Dist returns the distance between o and p.
func (o Point) Dist(p Point) float64 { return math.Sqrt(o.DistSq(p)) }

// Unit returns o normalised to unit length; the zero vector is returned
// unchanged if ‖o‖ is (numerically) zero.
func (o Point) Unit() Point {
	n := o.Norm()
	if n < 1e-300 {
		return o
	}
	return o.Scale(1.0 / n)
}

// Lerp returns the point at parameter t∈[0,1] along the segment o→p.
func (o Point) Lerp(p Point, t float64) Point {
	return Point{
		o.X + t*(p.X-o.X),
		o.Y + t*(p.Y-o.Y),
		o.Z + t*(p.Z-o.Z),
	}
}

// Finite returns true if all components of o are finite (no NaN or Inf).
func (o Point) Finite() bool {
	return !math.IsNaN(o.X) && !math.IsInf(o.X, 0) &&
		!math.IsNaN(o.Y) && !math.IsInf(o.Y, 0) &&
		!math.IsNaN(o.Z) && !math.IsInf(o.Z, 0)
}
