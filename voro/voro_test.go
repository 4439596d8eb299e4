// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpmech/vorothree/geom"
)

func cfg() Config {
	return Config{Bounds: Bounds{Min: geom.New(0, 0, 0), Max: geom.New(10, 10, 10)}}
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	_, err := New(Config{Bounds: Bounds{Min: geom.New(5, 5, 5), Max: geom.New(1, 1, 1)}})
	assert.Error(t, err)
}

func TestInsertRejectsOutOfDomain(t *testing.T) {
	v, err := New(cfg())
	require.NoError(t, err)
	_, err = v.InsertGenerator(geom.New(-1, 5, 5))
	assert.Error(t, err)
}

func TestCalculateAndGetCell(t *testing.T) {
	v, err := New(cfg())
	require.NoError(t, err)
	id, err := v.InsertGenerator(geom.New(5, 5, 5))
	require.NoError(t, err)
	require.NoError(t, v.Calculate(context.Background(), 1))

	view, ok := v.GetCell(id)
	require.True(t, ok)
	assert.False(t, view.Empty)
	assert.InDelta(t, 1000.0, view.Volume(), 1e-6)
	assert.Equal(t, 6, len(view.Faces))
}

func TestGetCellUnknownID(t *testing.T) {
	v, err := New(cfg())
	require.NoError(t, err)
	_, ok := v.GetCell(999)
	assert.False(t, ok)
}

func TestRandomGeneratorsRespectsWalls(t *testing.T) {
	v, err := New(cfg())
	require.NoError(t, err)
	v.AddWall(NewSphereWall(-1, geom.New(5, 5, 5), 4))
	rng := rand.New(rand.NewSource(42))
	require.NoError(t, v.RandomGenerators(20, rng))
	assert.Equal(t, 20, v.CountGenerators())
}

func TestRandomGeneratorsImpossibleWallsFail(t *testing.T) {
	v, err := New(cfg())
	require.NoError(t, err)
	v.AddWall(NewSphereWall(-1, geom.New(5, 5, 5), 0.0001))
	rng := rand.New(rand.NewSource(1))
	err = v.RandomGenerators(5, rng)
	assert.Error(t, err)
}

func TestRelaxThroughFacade(t *testing.T) {
	v, err := New(cfg())
	require.NoError(t, err)
	require.NoError(t, v.SetGenerators([]float64{
		1, 1, 1,
		9, 1, 1,
		1, 9, 1,
		9, 9, 9,
	}))
	require.NoError(t, v.Relax(context.Background(), 2))
	assert.Equal(t, 4, v.CountCells())
}

func TestPlaneWallCutsCell(t *testing.T) {
	v, err := New(cfg())
	require.NoError(t, err)
	v.AddWall(NewPlaneWall(-1, geom.New(5, 0, 0), geom.New(1, 0, 0)))
	id, err := v.InsertGenerator(geom.New(2, 5, 5))
	require.NoError(t, err)
	require.NoError(t, v.Calculate(context.Background(), 1))
	view, ok := v.GetCell(id)
	require.True(t, ok)
	assert.InDelta(t, 500.0, view.Volume(), 1e-6)
}
