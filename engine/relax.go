// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/vorothree/geom"
)

// Relax performs one step of Lloyd's algorithm: Calculate is run (or
// re-run) first, every generator is then moved to its cell's centroid,
// and finally the spatial index is rebuilt from the new positions.
// Centroids are computed from the pre-move cells, so every generator
// moves based on the same tessellation snapshot regardless of the order
// movements are applied in.
//
// With o.Verbose set, Relax reports the step the way the teacher's
// Richardson-extrapolation solver reports a step (io.Pfyel on entry,
// io.Pfgreen with the largest generator displacement on exit), using
// utl.Max the same way the teacher's mesh bounding-box code folds a
// running maximum over a set of points.
func (o *Tessellation) Relax(ctx context.Context, workers int) error {
	if o.Verbose {
		io.Pfyel("vorothree: relax: step starting (%d generators)\n", o.CountGenerators())
	}
	if err := o.Calculate(ctx, workers); err != nil {
		return err
	}

	centroids := make(map[int64][3]float64, len(o.Cells))
	for id, c := range o.Cells {
		if c.Empty() {
			continue
		}
		ctr := c.Centroid()
		centroids[id] = [3]float64{ctr.X, ctr.Y, ctr.Z}
	}

	ids := make([]int64, 0, len(o.generators))
	coords := make([]float64, 0, 3*len(o.generators))
	for id := range o.generators {
		ids = append(ids, id)
		if c, ok := centroids[id]; ok {
			coords = append(coords, c[0], c[1], c[2])
		} else {
			p := o.generators[id]
			coords = append(coords, p.X, p.Y, p.Z)
		}
	}

	idx, err := newIndex(o.Box, o.params)
	if err != nil {
		return err
	}
	newGenerators := make(map[int64]geom.Point, len(ids))
	maxDisp := 0.0
	for i, id := range ids {
		p := o.Box.Clamp(geom.New(coords[3*i], coords[3*i+1], coords[3*i+2]))
		if err := idx.InsertAt(id, p); err != nil {
			return err
		}
		if old, ok := o.generators[id]; ok {
			maxDisp = utl.Max(maxDisp, p.Dist(old))
		}
		newGenerators[id] = p
	}
	o.idx = idx
	o.generators = newGenerators
	o.Cells = nil
	if err := o.Calculate(ctx, workers); err != nil {
		return err
	}
	if o.Verbose {
		io.Pfgreen("vorothree: relax: step done, largest move = %v\n", maxDisp)
	}
	return nil
}
