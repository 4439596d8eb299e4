// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"github.com/cpmech/vorothree/cell"
	"github.com/cpmech/vorothree/geom"
)

// CellView is a read-only, already-packed snapshot of one generator's
// cell: vertex coordinates, each face as a loop of indices into
// Vertices, and the parallel FaceNeighbors slice naming what produced
// each face (a generator id if ≥0, a wall id or box side if <0).
type CellView struct {
	GeneratorID int64
	Empty       bool

	Vertices      []geom.Point
	Faces         [][]int32
	FaceNeighbors []int64
}

func newCellView(id int64, c *cell.Cell) CellView {
	if c.Empty() {
		return CellView{GeneratorID: id, Empty: true}
	}
	faces := c.Faces()
	view := CellView{
		GeneratorID:   id,
		Faces:         make([][]int32, len(faces)),
		FaceNeighbors: make([]int64, len(faces)),
	}

	used := make(map[int32]int32)
	var verts []geom.Point
	remap := func(v int32) int32 {
		if nv, ok := used[v]; ok {
			return nv
		}
		nv := int32(len(verts))
		verts = append(verts, c.VertexAt(v))
		used[v] = nv
		return nv
	}
	for i, f := range faces {
		loop := make([]int32, len(f.Loop))
		for k, v := range f.Loop {
			loop[k] = remap(v)
		}
		view.Faces[i] = loop
		view.FaceNeighbors[i] = int64(f.Neighbor)
	}
	view.Vertices = verts
	return view
}

// FaceArea returns the area of face j.
func (v CellView) FaceArea(j int) float64 {
	return cell.FaceArea(func(id int32) geom.Point { return v.Vertices[id] }, v.Faces[j])
}

// FaceCentroid returns the centroid of face j.
func (v CellView) FaceCentroid(j int) geom.Point {
	return cell.FaceCentroid(func(id int32) geom.Point { return v.Vertices[id] }, v.Faces[j])
}

// FaceNormal returns the outward unit normal of face j.
func (v CellView) FaceNormal(j int) geom.Point {
	return cell.FaceNormal(func(id int32) geom.Point { return v.Vertices[id] }, v.Faces[j])
}

// Volume returns the view's volume, computed directly from its packed
// faces via the divergence theorem about their own centroid (so it
// needs no reference back to the originating *cell.Cell).
func (v CellView) Volume() float64 {
	if v.Empty || len(v.Vertices) == 0 {
		return 0
	}
	var center geom.Point
	for _, p := range v.Vertices {
		center = center.Add(p)
	}
	center = center.Scale(1.0 / float64(len(v.Vertices)))

	var vol6 float64
	for _, loop := range v.Faces {
		a := v.Vertices[loop[0]].Sub(center)
		for i := 1; i < len(loop)-1; i++ {
			b := v.Vertices[loop[i]].Sub(center)
			c := v.Vertices[loop[i+1]].Sub(center)
			vol6 += a.Dot(b.Cross(c))
		}
	}
	return vol6 / 6.0
}

// Centroid returns the volume-weighted centroid of the view.
func (v CellView) Centroid() geom.Point {
	if v.Empty || len(v.Vertices) == 0 {
		return geom.Point{}
	}
	var center geom.Point
	for _, p := range v.Vertices {
		center = center.Add(p)
	}
	center = center.Scale(1.0 / float64(len(v.Vertices)))

	var weighted geom.Point
	var total float64
	for _, loop := range v.Faces {
		a := v.Vertices[loop[0]]
		for i := 1; i < len(loop)-1; i++ {
			b := v.Vertices[loop[i]]
			c := v.Vertices[loop[i+1]]
			av, bv, cv := a.Sub(center), b.Sub(center), c.Sub(center)
			w := av.Dot(bv.Cross(cv))
			tc := center.Add(a).Add(b).Add(c).Scale(0.25)
			weighted = weighted.Add(tc.Scale(w))
			total += w
		}
	}
	if total == 0 {
		return center
	}
	return weighted.Scale(1.0 / total)
}
