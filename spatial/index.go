// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spatial implements the spatial-index abstraction used to
// enumerate candidate Voronoi neighbours in order of increasing
// distance: a uniform 3D bin Grid and a point Octree, both behind the
// common Index capability set described in §4.3 of the design.
package spatial

import "github.com/cpmech/vorothree/geom"

// Index is the capability set both concrete spatial indices implement.
// There is deliberately no shared base type: the engine dispatches on
// this interface, and a caller could add a third implementation without
// touching either Grid or Octree.
type Index interface {
	// Len returns the number of live points.
	Len() int
	// PointOf returns the coordinates of id, or IdNotFoundError.
	PointOf(id int64) (geom.Point, error)
	// Insert adds a point and returns its new id.
	Insert(p geom.Point) (int64, error)
	// InsertAt adds a point under a caller-chosen id, used when rebuilding
	// an index while preserving existing ids (e.g. after Lloyd
	// relaxation moves every generator at once). The caller must ensure
	// id does not collide with any id already live in this index.
	InsertAt(id int64, p geom.Point) error
	// Remove drops id from the index.
	Remove(id int64) error
	// Move relocates id to a new point, re-binning as needed.
	Move(id int64, p geom.Point) error
	// ShellEnumerator returns a lazy, finite, non-restartable iterator
	// over every live point, in non-decreasing order of a lower bound
	// on its squared distance from "from".
	ShellEnumerator(from geom.Point) Enumerator
}

// Candidate is one point yielded by a shell Enumerator.
type Candidate struct {
	ID           int64
	P            geom.Point
	LowerBoundSq float64
}

// Enumerator lazily yields Candidates in non-decreasing LowerBoundSq
// order until exhausted. It is bounded by the index's Len() and must
// not be reused once Next returns ok=false.
type Enumerator interface {
	Next() (Candidate, bool)
}

// BulkLoad inserts every point of pts with stable ids 0..len(pts)-1,
// implemented in terms of Insert so it works uniformly across index
// implementations.
func BulkLoad(idx Index, pts []geom.Point) error {
	for _, p := range pts {
		if _, err := idx.Insert(p); err != nil {
			return err
		}
	}
	return nil
}
