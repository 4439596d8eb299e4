// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpmech/vorothree/geom"
)

func TestLoadConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"bounds": {"min": [0,0,0], "max": [10,10,10]},
		"index": "octree",
		"octree_capacity": 4
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfigJSON(path)
	require.NoError(t, err)
	assert.Equal(t, geom.New(0, 0, 0), cfg.Bounds.Min)
	assert.Equal(t, geom.New(10, 10, 10), cfg.Bounds.Max)
	assert.Equal(t, IndexOctree, cfg.Index)
	assert.Equal(t, 4, cfg.OctreeCapacity)

	v, err := New(cfg)
	require.NoError(t, err)
	id, err := v.InsertGenerator(geom.New(5, 5, 5))
	require.NoError(t, err)
	require.NoError(t, v.Calculate(context.Background(), 1))
	view, ok := v.GetCell(id)
	require.True(t, ok)
	assert.InDelta(t, 1000.0, view.Volume(), 1e-6)
}

func TestLoadConfigJSONUnknownIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"index":"bogus"}`), 0o644))
	_, err := LoadConfigJSON(path)
	assert.Error(t, err)
}

func TestLoadConfigJSONMissingFile(t *testing.T) {
	_, err := LoadConfigJSON("/nonexistent/path/config.json")
	assert.Error(t, err)
}
