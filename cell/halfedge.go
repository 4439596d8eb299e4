// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cell implements the mutable convex polyhedron ("cell") at the
// heart of the tessellation engine: a half-edge structure, the
// half-space cut operation that maintains it under repeated clipping,
// and the derived queries (volume, centroid, faces, edges) used by
// downstream callers.
package cell

import (
	"fmt"

	"github.com/cpmech/vorothree/geom"
)

// NeighborID identifies the generator or wall that produced a face. Ids
// ≥ 0 name a generator (the bisector neighbour); ids < 0 name a wall or
// one of the six initial bounding-box sides.
type NeighborID = int64

// BoxFaceBase starts the reserved band of NeighborIDs for the six
// initial bounding-box sides, which are tagged
// BoxFaceBase-0 .. BoxFaceBase-5, a range far below any realistic
// caller-chosen wall id so the two id spaces never collide in practice.
// Callers that pick wall ids should keep them within, say, [-1<<20, -1]
// to stay clear of this reserved band.
const BoxFaceBase NeighborID = -(int64(1) << 48)

// faceSlot is the sequential, cell-local identifier of a face. It is
// distinct from NeighborID: many faces can theoretically carry
// different NeighborIDs but faceSlot is always unique and dense-ish
// within one cell, used only to key the internal face table.
type faceSlot int32

type faceRec struct {
	neighbor NeighborID
	alive    bool
}

// Cell is the mutable convex polyhedron built for one seed. It is built
// once from the bounding box, clipped progressively by Cut, and queried
// via the Volume/Centroid/Faces/Edges family. Package engine allocates a
// fresh Cell for every seed and keeps each finished Cell as that seed's
// result; no Cell is reused as scratch for another seed. A Cell must
// never be cut from more than one goroutine at a time.
type Cell struct {
	Seed geom.Point
	Eps  geom.Eps

	verts []geom.Point
	alive []bool

	// adj[v] holds the ids of vertices adjacent to v, ordered clockwise
	// as seen from outside the polyhedron (equivalently counter-clockwise
	// viewed from inside). adjFace[v][k] is the face owning the directed
	// half-edge v -> adj[v][k]; adjMate[v][k] is the slot, within
	// adj[adj[v][k]], of the paired half-edge adj[v][k] -> v.
	adj     [][]int32
	adjFace [][]faceSlot
	adjMate [][]int32

	faces    []faceRec
	nextFace faceSlot
	empty    bool
}

// Empty reports whether the cell has been clipped away entirely.
func (o *Cell) Empty() bool { return o.empty }

// MarkEmpty forces the cell into the empty state, for callers that
// determine outside the Cut loop that a cell cannot have any volume
// (e.g. a wall whose Contains rejects the seed itself).
func (o *Cell) MarkEmpty() { o.markEmpty() }

// NumVerts returns the number of live vertices.
func (o *Cell) NumVerts() int {
	n := 0
	for _, a := range o.alive {
		if a {
			n++
		}
	}
	return n
}

// Vertex returns the coordinates of vertex id v.
func (o *Cell) Vertex(v int) geom.Point { return o.verts[v] }

// DefectError reports an internal combinatorial invariant violation
// (Euler's formula, a half-edge without a consistent mate, or similar).
// Per the package contract this is a bug, not a recoverable condition: it
// aborts the construction of the offending cell.
type DefectError struct {
	Reason string
}

func (e *DefectError) Error() string { return "cell: geometry defect: " + e.Reason }

func defect(format string, args ...interface{}) error {
	return &DefectError{Reason: fmt.Sprintf(format, args...)}
}

// faceLoopInput describes one face to be assembled by buildFromFaces: an
// ordered, outward-oriented vertex loop plus the NeighborID to record on
// it.
type faceLoopInput struct {
	loop     []int32
	neighbor NeighborID
}

// buildFromFaces (re)builds the half-edge adjacency of the cell from an
// explicit list of outward-oriented face loops over verts/alive. It is
// used both to construct the initial bounding-box cell and, after every
// cut, to recompute adjacency from the set of surviving (and newly
// created) face loops. Rebuilding from the face list -- rather than
// patching the half-edge structure in place -- keeps the combinatorial
// surgery in one well-tested place and lets every rebuild double as an
// invariant check.
func buildFromFaces(verts []geom.Point, alive []bool, faces []faceLoopInput, seed geom.Point, eps geom.Eps) (*Cell, error) {
	n := len(verts)

	// directed edge -> face owning it, used to find, for a given
	// outgoing half-edge, which face lies on the other side of it.
	type edgeKey struct{ a, b int32 }
	edgeFace := make(map[edgeKey]faceSlot, n*3)
	faceOut := make([]map[int32]int32, len(faces)) // faceOut[f][v] = vertex following v in face f's loop

	for fi, f := range faces {
		faceOut[fi] = make(map[int32]int32, len(f.loop))
		m := len(f.loop)
		if m < 3 {
			return nil, defect("face %d has only %d vertices", fi, m)
		}
		for k := 0; k < m; k++ {
			a := f.loop[k]
			b := f.loop[(k+1)%m]
			if a == b {
				return nil, defect("face %d has a degenerate edge at vertex %d", fi, a)
			}
			edgeFace[edgeKey{a, b}] = faceSlot(fi)
			faceOut[fi][a] = b
		}
	}

	// incident faces per vertex, in no particular order yet
	vertFaces := make([][]int32, n)
	for fi, f := range faces {
		for _, v := range f.loop {
			vertFaces[v] = append(vertFaces[v], int32(fi))
		}
	}

	adj := make([][]int32, n)
	adjFace := make([][]faceSlot, n)

	for v := 0; v < n; v++ {
		if !alive[v] {
			continue
		}
		fs := vertFaces[v]
		if len(fs) < 3 {
			return nil, defect("vertex %d has degree %d (< 3)", v, len(fs))
		}
		used := make(map[int32]bool, len(fs))
		start := fs[0]
		cur := start
		for {
			if used[cur] {
				return nil, defect("vertex %d: face cycle did not close (visited %d faces, expected %d)", v, len(used), len(fs))
			}
			used[cur] = true
			w, ok := faceOut[cur][v]
			if !ok {
				return nil, defect("vertex %d: face %d does not contain an outgoing edge from it", v, cur)
			}
			adj[v] = append(adj[v], w)
			adjFace[v] = append(adjFace[v], faceSlot(cur))
			// next face around v is whichever face owns the directed
			// edge (w -> v), i.e. the mate of (v -> w).
			nf, ok := edgeFace[edgeKey{w, v}]
			if !ok {
				return nil, defect("edge (%d,%d) has no mate: every directed edge must be balanced by its reverse on the neighbouring face", v, w)
			}
			if nf == cur {
				return nil, defect("edge (%d,%d) mate resolves to its own face", v, w)
			}
			cur = int32(nf)
			if cur == start {
				break
			}
		}
		if len(used) != len(fs) {
			return nil, defect("vertex %d: face cycle visited %d of %d incident faces", v, len(used), len(fs))
		}
	}

	// mate slots: position, within adj[w], of the entry pointing back to v
	pos := make([]map[int32]int32, n)
	for v := 0; v < n; v++ {
		if !alive[v] {
			continue
		}
		pos[v] = make(map[int32]int32, len(adj[v]))
		for k, w := range adj[v] {
			pos[v][w] = int32(k)
		}
	}
	adjMate := make([][]int32, n)
	for v := 0; v < n; v++ {
		if !alive[v] {
			continue
		}
		adjMate[v] = make([]int32, len(adj[v]))
		for k, w := range adj[v] {
			slot, ok := pos[w][int32(v)]
			if !ok {
				return nil, defect("edge (%d,%d) has no reverse entry in adjacency of %d", v, w, w)
			}
			adjMate[v][k] = slot
		}
	}

	// Euler's formula: V - E + F = 2
	nv, ne := 0, 0
	for v := 0; v < n; v++ {
		if alive[v] {
			nv++
			ne += len(adj[v])
		}
	}
	if ne%2 != 0 {
		return nil, defect("odd total half-edge count %d", ne)
	}
	ne /= 2
	nf := len(faces)
	if nv-ne+nf != 2 {
		return nil, defect("Euler's formula violated: V=%d E=%d F=%d, V-E+F=%d (want 2)", nv, ne, nf, nv-ne+nf)
	}

	frecs := make([]faceRec, len(faces))
	for i, f := range faces {
		frecs[i] = faceRec{neighbor: f.neighbor, alive: true}
	}

	return &Cell{
		Seed:     seed,
		Eps:      eps,
		verts:    verts,
		alive:    alive,
		adj:      adj,
		adjFace:  adjFace,
		adjMate:  adjMate,
		faces:    frecs,
		nextFace: faceSlot(len(faces)),
	}, nil
}

// faceLoop returns the ordered vertex loop of face f, traced by walking
// the half-edge cycle: starting from any half-edge tagged with f, the
// next half-edge of the same face is the mate's successor around the
// destination vertex.
func (o *Cell) faceLoop(f faceSlot) []int32 {
	// find one half-edge on this face
	var v0 int32 = -1
	var k0 int32 = -1
outer:
	for v := range o.adj {
		if !o.alive[v] {
			continue
		}
		for k, ff := range o.adjFace[v] {
			if ff == f {
				v0, k0 = int32(v), int32(k)
				break outer
			}
		}
	}
	if v0 < 0 {
		return nil
	}
	loop := []int32{v0}
	v, k := v0, k0
	for {
		w := o.adj[v][k]
		if w == v0 {
			break
		}
		loop = append(loop, w)
		mk := o.adjMate[v][k]
		v = w
		k = int32((int(mk) + 1) % len(o.adj[w]))
		if len(loop) > 4*len(o.verts)+8 {
			// defensive bound: a well-formed convex cell cannot have a
			// face longer than its total vertex count.
			return nil
		}
	}
	return loop
}

// faceSlots returns the set of distinct face slots currently present in
// the adjacency structure, in ascending order.
func (o *Cell) faceSlots() []faceSlot {
	seen := make(map[faceSlot]bool)
	for v := range o.adj {
		if !o.alive[v] {
			continue
		}
		for _, f := range o.adjFace[v] {
			seen[f] = true
		}
	}
	out := make([]faceSlot, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	// simple insertion sort; face counts per cell are small (tens)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
