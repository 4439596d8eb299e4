// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "github.com/cpmech/vorothree/geom"

// box vertex layout:
//
//	0:(lo,lo,lo) 1:(hi,lo,lo) 2:(hi,hi,lo) 3:(lo,hi,lo)
//	4:(lo,lo,hi) 5:(hi,lo,hi) 6:(hi,hi,hi) 7:(lo,hi,hi)
var boxFaceLoops = [6][]int32{
	{0, 3, 2, 1}, // z = lo, outward -Z
	{4, 5, 6, 7}, // z = hi, outward +Z
	{0, 1, 5, 4}, // y = lo, outward -Y
	{3, 7, 6, 2}, // y = hi, outward +Y
	{0, 4, 7, 3}, // x = lo, outward -X
	{1, 2, 6, 5}, // x = hi, outward +X
}

// NewBoxCell builds the initial cell for a seed: the bounding box itself,
// with its six sides tagged as faces with NeighborID BoxFaceBase-i.
func NewBoxCell(seed geom.Point, box geom.BBox) (*Cell, error) {
	lo, hi := box.Min, box.Max
	verts := []geom.Point{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {hi.X, hi.Y, lo.Z}, {lo.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z}, {hi.X, lo.Y, hi.Z}, {hi.X, hi.Y, hi.Z}, {lo.X, hi.Y, hi.Z},
	}
	alive := []bool{true, true, true, true, true, true, true, true}

	faces := make([]faceLoopInput, 6)
	for i, loop := range boxFaceLoops {
		faces[i] = faceLoopInput{loop: append([]int32(nil), loop...), neighbor: BoxFaceBase - NeighborID(i)}
	}

	eps := geom.NewEps(box.Diameter())
	return buildFromFaces(verts, alive, faces, seed, eps)
}
