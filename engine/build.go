// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/cpmech/vorothree/cell"
	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/spatial"
	"github.com/cpmech/vorothree/wall"
)

// BuildCell constructs the Voronoi cell of one seed: it starts from the
// bounding box, clips it by every wall's tangent plane at the seed
// (step 2 of §4), then walks idx's shell enumerator clipping by the
// bisector of the seed and each candidate neighbour in turn, stopping
// per the termination criterion of §4.4.
//
// Walls are applied exactly once, before any neighbour cut, evaluated
// at the seed itself rather than re-evaluated as the cell shrinks: for
// every wall kind in this package the tangent plane at the seed is
// already the tightest cut a convex cell clipped by that half-space can
// need, so a second pass after the neighbour loop would only ever
// reproduce a no-op (see DESIGN.md, "wall re-application timing").
func BuildCell(seedID int64, seed geom.Point, box geom.BBox, walls []wall.Wall, idx spatial.Index) (*cell.Cell, error) {
	c, err := cell.NewBoxCell(seed, box)
	if err != nil {
		return nil, err
	}

	for _, w := range walls {
		if !w.Contains(seed) {
			c.MarkEmpty()
			return c, nil
		}
		pl, ok := w.NearestPlane(seed)
		if !ok {
			continue
		}
		if _, err := c.Cut(pl.Q, pl.Nu, w.WallID); err != nil {
			return nil, err
		}
		if c.Empty() {
			return c, nil
		}
	}

	en := idx.ShellEnumerator(seed)
	r2 := c.MaxRadiusSq()
	for {
		cand, ok := en.Next()
		if !ok {
			break
		}
		if cand.ID == seedID {
			continue
		}
		if cand.LowerBoundSq >= 4*r2 {
			break
		}
		mid := seed.Mid(cand.P)
		nu := cand.P.Sub(seed)
		res, err := c.Cut(mid, nu, cand.ID)
		if err != nil {
			return nil, err
		}
		if c.Empty() {
			break
		}
		if res == cell.Clipped {
			r2 = c.MaxRadiusSq()
		}
	}
	return c, nil
}
