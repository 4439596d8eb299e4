// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpmech/vorothree/geom"
)

func box() geom.BBox { return geom.NewBBox(geom.New(0, 0, 0), geom.New(10, 10, 10)) }

func samplePoints() []geom.Point {
	return []geom.Point{
		geom.New(1, 1, 1),
		geom.New(9, 9, 9),
		geom.New(5, 5, 5),
		geom.New(1, 9, 1),
		geom.New(2, 2, 2),
	}
}

func testIndexShellOrder(t *testing.T, idx Index) {
	require.NoError(t, BulkLoad(idx, samplePoints()))
	assert.Equal(t, 5, idx.Len())

	from := geom.New(0, 0, 0)
	en := idx.ShellEnumerator(from)
	var last float64
	count := 0
	seen := map[int64]bool{}
	for {
		c, ok := en.Next()
		if !ok {
			break
		}
		assert.True(t, c.LowerBoundSq >= last-1e-9, "lower bound must be non-decreasing")
		last = c.LowerBoundSq
		assert.True(t, c.LowerBoundSq <= c.P.DistSq(from)+1e-9, "lower bound must not exceed true distance")
		seen[c.ID] = true
		count++
	}
	assert.Equal(t, 5, count)
	assert.Len(t, seen, 5)

	// closest point to origin is (1,1,1); it must come out first.
	en2 := idx.ShellEnumerator(from)
	first, ok := en2.Next()
	require.True(t, ok)
	assert.Equal(t, geom.New(1, 1, 1), first.P)
}

func TestGridShellOrder(t *testing.T) {
	g, err := NewGrid(box(), 4, 4, 4)
	require.NoError(t, err)
	testIndexShellOrder(t, g)
}

func TestOctreeShellOrder(t *testing.T) {
	o, err := NewOctree(box(), 2)
	require.NoError(t, err)
	testIndexShellOrder(t, o)
}

func TestGridRemoveAndMove(t *testing.T) {
	g, err := NewGrid(box(), 4, 4, 4)
	require.NoError(t, err)
	id0, _ := g.Insert(geom.New(1, 1, 1))
	id1, _ := g.Insert(geom.New(9, 9, 9))
	require.NoError(t, g.Remove(id0))
	assert.Equal(t, 1, g.Len())
	_, err = g.PointOf(id0)
	assert.Error(t, err)
	require.NoError(t, g.Move(id1, geom.New(0, 0, 0)))
	p, err := g.PointOf(id1)
	require.NoError(t, err)
	assert.Equal(t, geom.New(0, 0, 0), p)
}

func TestOctreeSplits(t *testing.T) {
	o, err := NewOctree(box(), 1)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		_, err := o.Insert(geom.New(float64(i)*0.1, float64(i)*0.1, float64(i)*0.1))
		require.NoError(t, err)
	}
	assert.Equal(t, 20, o.Len())
	assert.False(t, o.root.leaf)
}

func TestGridConfigErrors(t *testing.T) {
	_, err := NewGrid(box(), 0, 1, 1)
	assert.Error(t, err)
	_, err = NewOctree(box(), 0)
	assert.Error(t, err)
}
