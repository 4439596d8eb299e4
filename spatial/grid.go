// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"container/heap"

	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/verr"
)

// Grid is a uniform 3D bin partition of a bounding box. Points outside
// the box are clamped to the nearest bin (this package's chosen policy
// for out-of-domain points reaching the index directly; see
// DESIGN.md -- the reject policy lives one layer up, in package engine,
// for caller-facing Insert/Move, which package voro forwards to).
type Grid struct {
	box            geom.BBox
	nx, ny, nz     int
	bins           map[binKey][]int64
	binOf          map[int64]binKey
	points         map[int64]geom.Point
	nextID         int64
}

type binKey struct{ i, j, k int }

// NewGrid builds an empty grid over box partitioned into nx*ny*nz equal
// bins.
func NewGrid(box geom.BBox, nx, ny, nz int) (*Grid, error) {
	if box.Empty() {
		return nil, verr.Configf("grid: bounding box is empty or inverted")
	}
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, verr.Configf("grid: bin counts must be positive, got (%d,%d,%d)", nx, ny, nz)
	}
	return &Grid{
		box:    box,
		nx:     nx,
		ny:     ny,
		nz:     nz,
		bins:   make(map[binKey][]int64),
		binOf:  make(map[int64]binKey),
		points: make(map[int64]geom.Point),
	}, nil
}

func (o *Grid) binIndexOf(p geom.Point) binKey {
	c := o.box.Clamp(p)
	e := o.box.Extent()
	f := func(v, lo, ext float64, n int) int {
		if ext <= 0 {
			return 0
		}
		idx := int((v - lo) / ext * float64(n))
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		return idx
	}
	return binKey{
		f(c.X, o.box.Min.X, e.X, o.nx),
		f(c.Y, o.box.Min.Y, e.Y, o.ny),
		f(c.Z, o.box.Min.Z, e.Z, o.nz),
	}
}

func (o *Grid) binBox(k binKey) geom.BBox {
	return o.box.SubBox(k.i, k.j, k.k, o.nx, o.ny, o.nz)
}

// Len returns the number of live points.
func (o *Grid) Len() int { return len(o.points) }

// PointOf returns the coordinates of id.
func (o *Grid) PointOf(id int64) (geom.Point, error) {
	p, ok := o.points[id]
	if !ok {
		return geom.Point{}, &verr.IdNotFoundError{ID: id}
	}
	return p, nil
}

// Insert adds p and returns its id. A point outside the box is filed
// under the nearest bin; its stored coordinates are not clamped.
func (o *Grid) Insert(p geom.Point) (int64, error) {
	id := o.nextID
	o.nextID++
	o.points[id] = p
	k := o.binIndexOf(p)
	o.binOf[id] = k
	o.bins[k] = append(o.bins[k], id)
	return id, nil
}

// InsertAt adds p under the given id, advancing the id generator past it
// so that subsequent Insert calls never collide with it.
func (o *Grid) InsertAt(id int64, p geom.Point) error {
	if _, ok := o.points[id]; ok {
		return verr.Configf("grid: id %d already in use", id)
	}
	o.points[id] = p
	k := o.binIndexOf(p)
	o.binOf[id] = k
	o.bins[k] = append(o.bins[k], id)
	if id >= o.nextID {
		o.nextID = id + 1
	}
	return nil
}

// Remove drops id from the grid.
func (o *Grid) Remove(id int64) error {
	k, ok := o.binOf[id]
	if !ok {
		return &verr.IdNotFoundError{ID: id}
	}
	o.bins[k] = removeID(o.bins[k], id)
	delete(o.binOf, id)
	delete(o.points, id)
	return nil
}

// Move relocates id to p, re-binning if it crosses a bin boundary.
func (o *Grid) Move(id int64, p geom.Point) error {
	oldK, ok := o.binOf[id]
	if !ok {
		return &verr.IdNotFoundError{ID: id}
	}
	newK := o.binIndexOf(p)
	o.points[id] = p
	if newK != oldK {
		o.bins[oldK] = removeID(o.bins[oldK], id)
		o.bins[newK] = append(o.bins[newK], id)
		o.binOf[id] = newK
	}
	return nil
}

func removeID(s []int64, id int64) []int64 {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// gridBinHeapItem is one pending bin in the shell enumerator's
// frontier, ordered by the lower-bound squared distance from the query
// point to the bin's AABB.
type gridBinHeapItem struct {
	key binKey
	lb  float64
}

type gridBinHeap []gridBinHeapItem

func (h gridBinHeap) Len() int            { return len(h) }
func (h gridBinHeap) Less(i, j int) bool  { return h[i].lb < h[j].lb }
func (h gridBinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *gridBinHeap) Push(x interface{}) { *h = append(*h, x.(gridBinHeapItem)) }
func (h *gridBinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// gridEnumerator implements Enumerator by expanding a frontier of bins
// outward from the query point's home bin, using a min-heap keyed by
// each bin's AABB lower bound -- equivalent to, but simpler to reason
// about than, pruning by an explicit Chebyshev shell index.
type gridEnumerator struct {
	g        *Grid
	from     geom.Point
	visited  map[binKey]bool
	pending  gridBinHeap
	queue    []Candidate
}

// ShellEnumerator returns candidates in non-decreasing order of a lower
// bound on squared distance from "from".
func (o *Grid) ShellEnumerator(from geom.Point) Enumerator {
	home := o.binIndexOf(from)
	e := &gridEnumerator{g: o, from: from, visited: map[binKey]bool{home: true}}
	heap.Init(&e.pending)
	heap.Push(&e.pending, gridBinHeapItem{key: home, lb: o.binBox(home).DistSqTo(from)})
	return e
}

func (o *gridEnumerator) expandNeighbors(k binKey) {
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				if di == 0 && dj == 0 && dk == 0 {
					continue
				}
				nk := binKey{k.i + di, k.j + dj, k.k + dk}
				if nk.i < 0 || nk.i >= o.g.nx || nk.j < 0 || nk.j >= o.g.ny || nk.k < 0 || nk.k >= o.g.nz {
					continue
				}
				if o.visited[nk] {
					continue
				}
				o.visited[nk] = true
				heap.Push(&o.pending, gridBinHeapItem{key: nk, lb: o.g.binBox(nk).DistSqTo(o.from)})
			}
		}
	}
}

func (o *gridEnumerator) Next() (Candidate, bool) {
	for {
		if len(o.queue) > 0 {
			c := o.queue[0]
			o.queue = o.queue[1:]
			return c, true
		}
		if o.pending.Len() == 0 {
			return Candidate{}, false
		}
		top := heap.Pop(&o.pending).(gridBinHeapItem)
		o.expandNeighbors(top.key)
		ids := o.g.bins[top.key]
		for _, id := range ids {
			o.queue = append(o.queue, Candidate{ID: id, P: o.g.points[id], LowerBoundSq: top.lb})
		}
	}
}
