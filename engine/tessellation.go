// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package engine orchestrates per-seed cell construction: it builds the
// initial box cell, applies walls, and drives the neighbour-cut loop
// governed by the termination criterion of §4.4, optionally spreading
// the work for all seeds over a fixed-size worker pool (§5).
package engine

import (
	"github.com/cpmech/vorothree/cell"
	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/spatial"
	"github.com/cpmech/vorothree/verr"
	"github.com/cpmech/vorothree/wall"
)

// IndexKind selects which spatial index implementation backs a
// Tessellation.
type IndexKind int

const (
	// KindGrid is a uniform 3D bin grid; Params is (nx,ny,nz).
	KindGrid IndexKind = iota
	// KindOctree is an adaptive point octree; Params is (capacity).
	KindOctree
)

// IndexParams configures the spatial index.
type IndexParams struct {
	Kind             IndexKind
	Nx, Ny, Nz       int // for KindGrid
	OctreeCapacity int // for KindOctree
}

// Tessellation holds everything calculate() needs: the bounding box,
// the wall list, the generator set and its spatial index, and (after
// Calculate) the resulting cells.
type Tessellation struct {
	Box    geom.BBox
	Walls  []wall.Wall
	params IndexParams

	idx        spatial.Index
	generators map[int64]geom.Point
	nextID     int64

	Cells map[int64]*cell.Cell

	// Verbose turns on the gosl/io-style progress messages Calculate and
	// Relax print as they work; off by default, same as the teacher's
	// own solver.Verbose.
	Verbose bool
}

// New builds an empty tessellation over box, with the given spatial
// index configuration.
func New(box geom.BBox, params IndexParams) (*Tessellation, error) {
	if box.Empty() {
		return nil, verr.Configf("bounding box is empty or inverted (min must be < max on every axis)")
	}
	idx, err := newIndex(box, params)
	if err != nil {
		return nil, err
	}
	return &Tessellation{
		Box:        box,
		params:     params,
		idx:        idx,
		generators: make(map[int64]geom.Point),
	}, nil
}

func newIndex(box geom.BBox, params IndexParams) (spatial.Index, error) {
	switch params.Kind {
	case KindGrid:
		return spatial.NewGrid(box, params.Nx, params.Ny, params.Nz)
	case KindOctree:
		return spatial.NewOctree(box, params.OctreeCapacity)
	default:
		return nil, verr.Configf("unknown index kind %d", params.Kind)
	}
}

// AddWall appends w to the wall list.
func (o *Tessellation) AddWall(w wall.Wall) { o.Walls = append(o.Walls, w) }

// ClearWalls removes every wall.
func (o *Tessellation) ClearWalls() { o.Walls = nil }

// CountGenerators returns the number of live generators.
func (o *Tessellation) CountGenerators() int { return len(o.generators) }

// CountCells returns the number of cells produced by the last Calculate.
func (o *Tessellation) CountCells() int { return len(o.Cells) }

// GetCell returns the cell built for generator id, if any.
func (o *Tessellation) GetCell(id int64) (*cell.Cell, bool) {
	c, ok := o.Cells[id]
	return c, ok
}

// SetGenerators bulk-replaces every generator with coords (x,y,z
// triples), clamping any point outside the bounding box into it. This
// is the "clamp" branch of the OutOfDomain policy: bulk loading is used
// by tests and demos to seed a tessellation from, e.g., uniform random
// samples, where silently keeping every requested point is more useful
// than rejecting the call outright. InsertGenerator, by contrast,
// rejects out-of-domain points (see DESIGN.md).
func (o *Tessellation) SetGenerators(coords []float64) error {
	if len(coords)%3 != 0 {
		return verr.Configf("coords length %d is not a multiple of 3", len(coords))
	}
	idx, err := newIndex(o.Box, o.params)
	if err != nil {
		return err
	}
	o.idx = idx
	o.generators = make(map[int64]geom.Point, len(coords)/3)
	o.nextID = 0
	o.Cells = nil
	for i := 0; i < len(coords); i += 3 {
		p := o.Box.Clamp(geom.New(coords[i], coords[i+1], coords[i+2]))
		id, err := o.idx.Insert(p)
		if err != nil {
			return err
		}
		o.generators[id] = p
		if id+1 > o.nextID {
			o.nextID = id + 1
		}
	}
	return nil
}

// InsertGenerator adds one generator and returns its id. Points outside
// the bounding box are rejected (OutOfDomainError): see SetGenerators's
// doc comment for why bulk loading and single insertion differ.
func (o *Tessellation) InsertGenerator(p geom.Point) (int64, error) {
	if !o.Box.Contains(p, 0) {
		return 0, &verr.OutOfDomainError{X: p.X, Y: p.Y, Z: p.Z}
	}
	id, err := o.idx.Insert(p)
	if err != nil {
		return 0, err
	}
	o.generators[id] = p
	o.Cells = nil
	return id, nil
}

// RemoveGenerator drops generator id.
func (o *Tessellation) RemoveGenerator(id int64) error {
	if _, ok := o.generators[id]; !ok {
		return &verr.IdNotFoundError{ID: id}
	}
	if err := o.idx.Remove(id); err != nil {
		return err
	}
	delete(o.generators, id)
	delete(o.Cells, id)
	return nil
}

// MoveGenerator relocates generator id to p.
func (o *Tessellation) MoveGenerator(id int64, p geom.Point) error {
	if _, ok := o.generators[id]; !ok {
		return &verr.IdNotFoundError{ID: id}
	}
	if !o.Box.Contains(p, 0) {
		return &verr.OutOfDomainError{X: p.X, Y: p.Y, Z: p.Z}
	}
	if err := o.idx.Move(id, p); err != nil {
		return err
	}
	o.generators[id] = p
	o.Cells = nil
	return nil
}

// GeneratorPoint returns the coordinates of generator id.
func (o *Tessellation) GeneratorPoint(id int64) (geom.Point, bool) {
	p, ok := o.generators[id]
	return p, ok
}

// GeneratorIDs returns every live generator id, in no particular order.
func (o *Tessellation) GeneratorIDs() []int64 {
	ids := make([]int64, 0, len(o.generators))
	for id := range o.generators {
		ids = append(ids, id)
	}
	return ids
}
