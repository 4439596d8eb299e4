// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math"
	"sort"

	"github.com/cpmech/vorothree/geom"
)

// CutResult reports the outcome of a half-space cut.
type CutResult int

const (
	// Unchanged means the plane did not touch the cell's positive side;
	// the cell was left exactly as it was.
	Unchanged CutResult = iota
	// Clipped means the cell was replaced by its intersection with the
	// half-space, and (usually) gained one new face.
	Clipped
	// EmptyResult means every vertex was strictly on the positive side;
	// the cell has no volume left.
	EmptyResult
)

// Cut clips the cell to the closed half-space {x : ν·(x-q) ≤ 0} and, if
// that introduces a new face, tags it with neighbor. It implements the
// contract of §4.1: vertices strictly inside (p<-ε) are kept untouched,
// vertices strictly outside (p>+ε) are discarded, and the boundary
// between the two is re-triangulated into (at most) one new planar
// face. Internally, rather than perform half-edge surgery in place, the
// cut re-clips every existing face's polygon against the half-space
// (classic polygon clipping) and reassembles the whole adjacency
// structure from the resulting set of faces -- which both keeps the
// combinatorial bookkeeping in one place (buildFromFaces) and turns
// every cut into a free invariant check.
func (o *Cell) Cut(q, nu geom.Point, neighbor NeighborID) (CutResult, error) {
	if o.empty {
		return EmptyResult, nil
	}

	n := len(o.verts)
	p := make([]float64, n)
	side := make([]int, n)
	anyPos, anyNonPos := false, false
	for v := 0; v < n; v++ {
		if !o.alive[v] {
			continue
		}
		p[v] = nu.Dot(o.verts[v].Sub(q))
		side[v] = o.Eps.Side(p[v])
		if side[v] > 0 {
			anyPos = true
		} else {
			anyNonPos = true
		}
	}

	if !anyPos {
		return Unchanged, nil
	}
	if !anyNonPos {
		o.markEmpty()
		return EmptyResult, nil
	}

	// classic edge-crossing detection and new-vertex creation, keyed by
	// the canonical (unordered) pair so that the edge shared by its two
	// bordering faces produces exactly one crossing vertex.
	type edgeKey struct{ a, b int32 }
	canon := func(a, b int32) edgeKey {
		if a < b {
			return edgeKey{a, b}
		}
		return edgeKey{b, a}
	}
	crossing := make(map[edgeKey]int32)
	newVerts := append([]geom.Point(nil), o.verts...)
	newAlive := append([]bool(nil), o.alive...)

	crossPoint := func(a, b int32) int32 {
		k := canon(a, b)
		if id, ok := crossing[k]; ok {
			return id
		}
		t := p[a] / (p[a] - p[b])
		x := o.verts[a].Lerp(o.verts[b], t)
		id := int32(len(newVerts))
		newVerts = append(newVerts, x)
		newAlive = append(newAlive, true)
		crossing[k] = id
		return id
	}

	onPlaneSet := make(map[int32]bool)

	var newFaces []faceLoopInput
	for _, f := range o.faceSlots() {
		loop := o.faceLoop(f)
		if loop == nil {
			return EmptyResult, defect("face %d: could not trace loop during cut", f)
		}
		clipped := clipLoopToHalfSpace(loop, side, crossPoint, onPlaneSet)
		if len(clipped) >= 3 {
			newFaces = append(newFaces, faceLoopInput{loop: clipped, neighbor: o.faces[f].neighbor})
		}
	}

	// gather the new face's boundary: every crossing vertex created
	// above, plus any original on-plane vertex that survives on a kept
	// face loop.
	boundary := make(map[int32]bool, len(crossing)+4)
	for _, id := range crossing {
		boundary[id] = true
	}
	for v := range onPlaneSet {
		boundary[v] = true
	}
	if len(boundary) >= 3 {
		loop := orderAroundPlane(boundary, newVerts, q, nu)
		if len(loop) >= 3 {
			newFaces = append(newFaces, faceLoopInput{loop: loop, neighbor: neighbor})
		}
	}

	// prune vertices that ended up incident to no face at all (fully
	// removed corners).
	incident := make([]bool, len(newVerts))
	for _, f := range newFaces {
		for _, v := range f.loop {
			incident[v] = true
		}
	}
	for v := range newAlive {
		if newAlive[v] && !incident[v] {
			newAlive[v] = false
		}
	}

	rebuilt, err := buildFromFaces(newVerts, newAlive, newFaces, o.Seed, o.Eps)
	if err != nil {
		return EmptyResult, err
	}
	if rebuilt.NumVerts() == 0 {
		o.markEmpty()
		return EmptyResult, nil
	}
	*o = *rebuilt
	return Clipped, nil
}

func (o *Cell) markEmpty() {
	o.empty = true
	o.verts = nil
	o.alive = nil
	o.adj = nil
	o.adjFace = nil
	o.adjMate = nil
	o.faces = nil
}

// clipLoopToHalfSpace applies Sutherland-Hodgman clipping of one
// outward-oriented face loop against the half-space side<=0, inserting
// interpolated crossing vertices (deduplicated via crossPoint) and
// recording any original on-plane vertex it keeps.
func clipLoopToHalfSpace(loop []int32, side []int, crossPoint func(a, b int32) int32, onPlaneSet map[int32]bool) []int32 {
	m := len(loop)
	out := make([]int32, 0, m+2)
	for i := 0; i < m; i++ {
		a := loop[i]
		b := loop[(i+1)%m]
		sa, sb := side[a], side[b]
		if sa <= 0 {
			out = appendUnique(out, a)
			if sa == 0 {
				onPlaneSet[a] = true
			}
		}
		if (sa > 0 && sb < 0) || (sa < 0 && sb > 0) {
			out = appendUnique(out, crossPoint(a, b))
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func appendUnique(s []int32, v int32) []int32 {
	if len(s) > 0 && s[len(s)-1] == v {
		return s
	}
	return append(s, v)
}

// orderAroundPlane sorts the given vertex ids, all lying (within ε) on
// the plane (q,nu), into a convex polygon loop by angle around their
// centroid. This is valid because the cross-section of a convex
// polyhedron by a plane is itself convex.
func orderAroundPlane(ids map[int32]bool, verts []geom.Point, q, nu geom.Point) []int32 {
	list := make([]int32, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	if len(list) < 3 {
		return list
	}
	u := pickBasis(nu)
	v := nu.Unit().Cross(u)

	var center geom.Point
	for _, id := range list {
		center = center.Add(verts[id])
	}
	center = center.Scale(1.0 / float64(len(list)))

	angle := make(map[int32]float64, len(list))
	for _, id := range list {
		d := verts[id].Sub(center)
		angle[id] = math.Atan2(d.Dot(v), d.Dot(u))
	}
	sort.Slice(list, func(i, j int) bool { return angle[list[i]] < angle[list[j]] })
	// the loop must be oriented so that it is outward w.r.t. the
	// half-space kept (side<=0): walking it counter-clockwise when
	// viewed from the +nu side, which is exactly increasing angle in
	// the (u,v) frame built from nu, satisfies that by construction.
	return list
}

// pickBasis returns a unit vector orthogonal to nu, used to build an
// arbitrary but consistent 2D frame within the cut plane.
func pickBasis(nu geom.Point) geom.Point {
	n := nu.Unit()
	ref := geom.New(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		ref = geom.New(0, 1, 0)
	}
	b := ref.Sub(n.Scale(ref.Dot(n)))
	return b.Unit()
}
