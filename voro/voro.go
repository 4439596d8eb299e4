// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voro is the public façade of the tessellation library: a
// thin builder over package engine that exposes bounds, walls and
// generators, the calculate()/relax() operations, and cell queries in
// the vocabulary of §6 of the design. Errors are passed through as
// package engine returns them, already in the taxonomy of package verr.
package voro

import (
	"context"

	"github.com/cpmech/vorothree/engine"
	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/wall"
)

// Tessellation is the entry point: construct one with New, configure it
// with AddWall/SetGenerators/InsertGenerator, then call Calculate (or
// Relax, which implies Calculate) before reading cells back with
// GetCell.
type Tessellation struct {
	t *engine.Tessellation
}

// Bounds describes the axis-aligned domain the tessellation is computed
// within.
type Bounds struct {
	Min, Max geom.Point
}

// IndexKind selects the spatial index backing a Tessellation.
type IndexKind = engine.IndexKind

const (
	IndexGrid   = engine.KindGrid
	IndexOctree = engine.KindOctree
)

// Config configures a new Tessellation: the domain bounds and the
// spatial index parameters (bin counts for a grid, leaf capacity for an
// octree).
type Config struct {
	Bounds         Bounds
	Index          IndexKind
	GridNx, GridNy, GridNz int
	OctreeCapacity int
}

// New builds an empty Tessellation over cfg.Bounds. A zero Config.Index
// selects the uniform grid; GridNx/Ny/Nz default to 10 each when all
// three are zero so a caller can omit them for a quick start.
func New(cfg Config) (*Tessellation, error) {
	if cfg.Index == IndexGrid && cfg.GridNx == 0 && cfg.GridNy == 0 && cfg.GridNz == 0 {
		cfg.GridNx, cfg.GridNy, cfg.GridNz = 10, 10, 10
	}
	if cfg.Index == IndexOctree && cfg.OctreeCapacity == 0 {
		cfg.OctreeCapacity = 8
	}
	box := geom.BBox{Min: cfg.Bounds.Min, Max: cfg.Bounds.Max}
	t, err := engine.New(box, engine.IndexParams{
		Kind:           cfg.Index,
		Nx:             cfg.GridNx,
		Ny:             cfg.GridNy,
		Nz:             cfg.GridNz,
		OctreeCapacity: cfg.OctreeCapacity,
	})
	if err != nil {
		return nil, err
	}
	return &Tessellation{t: t}, nil
}

// AddWall appends w to the wall list.
func (o *Tessellation) AddWall(w wall.Wall) { o.t.AddWall(w) }

// ClearWalls removes every wall.
func (o *Tessellation) ClearWalls() { o.t.ClearWalls() }

// SetGenerators bulk-replaces every generator with flat (x,y,z) coords,
// clamping points outside the bounds into them.
func (o *Tessellation) SetGenerators(coords []float64) error { return o.t.SetGenerators(coords) }

// InsertGenerator adds one generator, rejecting points outside the
// bounds with an OutOfDomainError.
func (o *Tessellation) InsertGenerator(p geom.Point) (int64, error) { return o.t.InsertGenerator(p) }

// RemoveGenerator drops generator id.
func (o *Tessellation) RemoveGenerator(id int64) error { return o.t.RemoveGenerator(id) }

// MoveGenerator relocates generator id to p, rejecting out-of-bounds
// points.
func (o *Tessellation) MoveGenerator(id int64, p geom.Point) error { return o.t.MoveGenerator(id, p) }

// CountGenerators returns the number of live generators.
func (o *Tessellation) CountGenerators() int { return o.t.CountGenerators() }

// CountCells returns the number of cells produced by the last Calculate
// or Relax.
func (o *Tessellation) CountCells() int { return o.t.CountCells() }

// Calculate builds the cell of every live generator, spread over a pool
// of workers workers (workers<=0 picks GOMAXPROCS). ctx is polled
// between seeds.
func (o *Tessellation) Calculate(ctx context.Context, workers int) error {
	return o.t.Calculate(ctx, workers)
}

// Relax performs one Lloyd relaxation step (implies Calculate both
// before and after moving every generator to its cell's centroid).
func (o *Tessellation) Relax(ctx context.Context, workers int) error {
	return o.t.Relax(ctx, workers)
}

// GetCell returns a packed view of generator id's cell, or ok=false if
// id is unknown or Calculate has not produced a cell for it yet.
func (o *Tessellation) GetCell(id int64) (CellView, bool) {
	c, ok := o.t.GetCell(id)
	if !ok {
		return CellView{}, false
	}
	return newCellView(id, c), true
}
