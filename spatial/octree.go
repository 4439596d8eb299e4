// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"container/heap"

	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/verr"
)

// octNode is one node of the adaptive octree: a leaf holds up to
// capacity point ids directly; an internal node holds eight children
// and no points of its own.
type octNode struct {
	box      geom.BBox
	leaf     bool
	ids      []int64
	children [8]*octNode
}

// Octree is an adaptive point octree: leaves split into eight children,
// about their box centre, once they exceed capacity points.
type Octree struct {
	root     *octNode
	capacity int
	points   map[int64]geom.Point
	nodeOf   map[int64]*octNode
	nextID   int64
}

// NewOctree builds an empty octree over box whose leaves split once
// they exceed capacity points.
func NewOctree(box geom.BBox, capacity int) (*Octree, error) {
	if box.Empty() {
		return nil, verr.Configf("octree: bounding box is empty or inverted")
	}
	if capacity <= 0 {
		return nil, verr.Configf("octree: capacity must be positive, got %d", capacity)
	}
	return &Octree{
		root:     &octNode{box: box, leaf: true},
		capacity: capacity,
		points:   make(map[int64]geom.Point),
		nodeOf:   make(map[int64]*octNode),
	}, nil
}

// Len returns the number of live points.
func (o *Octree) Len() int { return len(o.points) }

// PointOf returns the coordinates of id.
func (o *Octree) PointOf(id int64) (geom.Point, error) {
	p, ok := o.points[id]
	if !ok {
		return geom.Point{}, &verr.IdNotFoundError{ID: id}
	}
	return p, nil
}

func octChildIndex(box geom.BBox, p geom.Point) int {
	c := box.Center()
	idx := 0
	if p.X >= c.X {
		idx |= 1
	}
	if p.Y >= c.Y {
		idx |= 2
	}
	if p.Z >= c.Z {
		idx |= 4
	}
	return idx
}

func octChildBox(box geom.BBox, idx int) geom.BBox {
	c := box.Center()
	lo, hi := box.Min, box.Max
	if idx&1 == 0 {
		hi.X = c.X
	} else {
		lo.X = c.X
	}
	if idx&2 == 0 {
		hi.Y = c.Y
	} else {
		lo.Y = c.Y
	}
	if idx&4 == 0 {
		hi.Z = c.Z
	} else {
		lo.Z = c.Z
	}
	return geom.BBox{Min: lo, Max: hi}
}

// Insert adds p (clamped into the root box if necessary) and returns
// its id.
func (o *Octree) Insert(p geom.Point) (int64, error) {
	cp := o.root.box.Clamp(p)
	id := o.nextID
	o.nextID++
	o.points[id] = cp
	node := o.descend(o.root, cp)
	node.ids = append(node.ids, id)
	o.nodeOf[id] = node
	o.splitIfNeeded(node)
	return id, nil
}

// InsertAt adds p under the given id, advancing the id generator past it
// so that subsequent Insert calls never collide with it.
func (o *Octree) InsertAt(id int64, p geom.Point) error {
	if _, ok := o.points[id]; ok {
		return verr.Configf("octree: id %d already in use", id)
	}
	cp := o.root.box.Clamp(p)
	o.points[id] = cp
	node := o.descend(o.root, cp)
	node.ids = append(node.ids, id)
	o.nodeOf[id] = node
	o.splitIfNeeded(node)
	if id >= o.nextID {
		o.nextID = id + 1
	}
	return nil
}

// descend walks down to the leaf that should own p, without inserting.
func (o *Octree) descend(n *octNode, p geom.Point) *octNode {
	for !n.leaf {
		idx := octChildIndex(n.box, p)
		n = n.children[idx]
	}
	return n
}

func (o *Octree) splitIfNeeded(n *octNode) {
	if !n.leaf || len(n.ids) <= o.capacity {
		return
	}
	ids := n.ids
	n.ids = nil
	n.leaf = false
	for i := 0; i < 8; i++ {
		n.children[i] = &octNode{box: octChildBox(n.box, i), leaf: true}
	}
	for _, id := range ids {
		p := o.points[id]
		idx := octChildIndex(n.box, p)
		child := n.children[idx]
		child.ids = append(child.ids, id)
		o.nodeOf[id] = child
	}
	for i := 0; i < 8; i++ {
		o.splitIfNeeded(n.children[i])
	}
}

// Remove drops id from the octree. Leaves are never merged back
// together: the tree only grows, trading a little extra depth for
// simplicity, which is acceptable since relax() rebuilds the index from
// scratch after every generator move anyway.
func (o *Octree) Remove(id int64) error {
	n, ok := o.nodeOf[id]
	if !ok {
		return &verr.IdNotFoundError{ID: id}
	}
	n.ids = removeID(n.ids, id)
	delete(o.nodeOf, id)
	delete(o.points, id)
	return nil
}

// Move relocates id to p, re-inserting it into the tree if it leaves
// its current leaf's box.
func (o *Octree) Move(id int64, p geom.Point) error {
	n, ok := o.nodeOf[id]
	if !ok {
		return &verr.IdNotFoundError{ID: id}
	}
	cp := o.root.box.Clamp(p)
	o.points[id] = cp
	if n.box.Contains(cp, 0) {
		return nil
	}
	n.ids = removeID(n.ids, id)
	newNode := o.descend(o.root, cp)
	newNode.ids = append(newNode.ids, id)
	o.nodeOf[id] = newNode
	o.splitIfNeeded(newNode)
	return nil
}

// octHeapItem is one pending node in the shell enumerator's frontier.
type octHeapItem struct {
	node *octNode
	lb   float64
}

type octHeap []octHeapItem

func (h octHeap) Len() int            { return len(h) }
func (h octHeap) Less(i, j int) bool  { return h[i].lb < h[j].lb }
func (h octHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *octHeap) Push(x interface{}) { *h = append(*h, x.(octHeapItem)) }
func (h *octHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type octEnumerator struct {
	o       *Octree
	from    geom.Point
	pending octHeap
	queue   []Candidate
}

// ShellEnumerator returns candidates in non-decreasing order of a lower
// bound on squared distance from "from", descending into the nearest
// unvisited node at each step.
func (o *Octree) ShellEnumerator(from geom.Point) Enumerator {
	e := &octEnumerator{o: o, from: from}
	heap.Init(&e.pending)
	if o.root != nil {
		heap.Push(&e.pending, octHeapItem{node: o.root, lb: o.root.box.DistSqTo(from)})
	}
	return e
}

func (o *octEnumerator) Next() (Candidate, bool) {
	for {
		if len(o.queue) > 0 {
			c := o.queue[0]
			o.queue = o.queue[1:]
			return c, true
		}
		if o.pending.Len() == 0 {
			return Candidate{}, false
		}
		top := heap.Pop(&o.pending).(octHeapItem)
		n := top.node
		if n.leaf {
			for _, id := range n.ids {
				o.queue = append(o.queue, Candidate{ID: id, P: o.o.points[id], LowerBoundSq: top.lb})
			}
			continue
		}
		for _, c := range n.children {
			if c == nil {
				continue
			}
			heap.Push(&o.pending, octHeapItem{node: c, lb: c.box.DistSqTo(o.from)})
		}
	}
}
