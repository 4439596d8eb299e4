// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "github.com/cpmech/vorothree/geom"

// Face is a read-only view of one face of the cell: its ordered,
// outward-oriented vertex loop and the neighbor that produced it.
type Face struct {
	Loop     []int32
	Neighbor NeighborID
}

// Faces returns every live face of the cell, in a deterministic order
// given the sequence of cuts applied so far.
func (o *Cell) Faces() []Face {
	if o.empty {
		return nil
	}
	slots := o.faceSlots()
	out := make([]Face, 0, len(slots))
	for _, f := range slots {
		loop := o.faceLoop(f)
		if len(loop) < 3 {
			continue
		}
		out = append(out, Face{Loop: loop, Neighbor: o.faces[f].neighbor})
	}
	return out
}

// Volume returns the cell's volume via the divergence theorem: a fan
// triangulation of each face from the seed, summed over all faces. The
// result is non-negative because every face is outward-oriented and
// the seed lies inside the convex cell.
func (o *Cell) Volume() float64 {
	if o.empty {
		return 0
	}
	p := o.Seed
	var vol6 float64
	for _, f := range o.Faces() {
		loop := f.Loop
		a := o.verts[loop[0]].Sub(p)
		for i := 1; i < len(loop)-1; i++ {
			b := o.verts[loop[i]].Sub(p)
			c := o.verts[loop[i+1]].Sub(p)
			vol6 += a.Dot(b.Cross(c))
		}
	}
	return vol6 / 6.0
}

// Centroid returns the volume-weighted centroid of the same tetrahedral
// fan used by Volume.
func (o *Cell) Centroid() geom.Point {
	if o.empty {
		return geom.Point{}
	}
	p := o.Seed
	var weighted geom.Point
	var total float64
	for _, f := range o.Faces() {
		loop := f.Loop
		a := o.verts[loop[0]]
		for i := 1; i < len(loop)-1; i++ {
			b := o.verts[loop[i]]
			c := o.verts[loop[i+1]]
			av, bv, cv := a.Sub(p), b.Sub(p), c.Sub(p)
			w := av.Dot(bv.Cross(cv))
			tc := p.Add(a).Add(b).Add(c).Scale(0.25)
			weighted = weighted.Add(tc.Scale(w))
			total += w
		}
	}
	if total == 0 {
		return p
	}
	return weighted.Scale(1.0 / total)
}

// FaceNormal returns the outward unit normal of the given face loop,
// computed with Newell's method (robust for non-triangular, possibly
// slightly non-planar-within-ε polygons).
func FaceNormal(verts func(int32) geom.Point, loop []int32) geom.Point {
	var n geom.Point
	m := len(loop)
	for i := 0; i < m; i++ {
		a := verts(loop[i])
		b := verts(loop[(i+1)%m])
		n = n.Add(a.Cross(b))
	}
	return n.Unit()
}

// FaceArea returns the area of the given face loop.
func FaceArea(verts func(int32) geom.Point, loop []int32) float64 {
	var n geom.Point
	m := len(loop)
	for i := 0; i < m; i++ {
		a := verts(loop[i])
		b := verts(loop[(i+1)%m])
		n = n.Add(a.Cross(b))
	}
	return 0.5 * n.Norm()
}

// FaceCentroid returns the area-weighted centroid of the given face
// loop via a fan triangulation from its first vertex.
func FaceCentroid(verts func(int32) geom.Point, loop []int32) geom.Point {
	if len(loop) == 0 {
		return geom.Point{}
	}
	a := verts(loop[0])
	var weighted geom.Point
	var total float64
	for i := 1; i < len(loop)-1; i++ {
		b := verts(loop[i])
		c := verts(loop[i+1])
		area2 := b.Sub(a).Cross(c.Sub(a)).Norm()
		tc := a.Add(b).Add(c).Scale(1.0 / 3.0)
		weighted = weighted.Add(tc.Scale(area2))
		total += area2
	}
	if total == 0 {
		return a
	}
	return weighted.Scale(1.0 / total)
}

// VertexAt exposes vertex coordinates by id, for use with the FaceArea /
// FaceNormal / FaceCentroid helpers above.
func (o *Cell) VertexAt(id int32) geom.Point { return o.verts[id] }

// Edge is one undirected edge of the cell.
type Edge struct {
	A, B int32
}

// Edges enumerates every undirected edge exactly once, using the
// canonical ordering (lower vertex id, slot within its adjacency) to
// avoid double-counting each edge's two half-edges.
func (o *Cell) Edges() []Edge {
	if o.empty {
		return nil
	}
	var out []Edge
	for v := range o.adj {
		if !o.alive[v] {
			continue
		}
		for _, w := range o.adj[v] {
			if int32(v) < w {
				out = append(out, Edge{A: int32(v), B: w})
			}
		}
	}
	return out
}

// EdgeLength returns the length of an edge.
func (o *Cell) EdgeLength(e Edge) float64 { return o.verts[e.A].Dist(o.verts[e.B]) }

// MaxRadiusSq returns the maximum squared distance from the seed to any
// live vertex: the termination radius bound R² used by the engine (see
// package engine and §4.4 of the design).
func (o *Cell) MaxRadiusSq() float64 {
	if o.empty {
		return 0
	}
	var maxSq float64
	for v, ok := range o.alive {
		if !ok {
			continue
		}
		d := o.Seed.DistSq(o.verts[v])
		if d > maxSq {
			maxSq = d
		}
	}
	return maxSq
}
