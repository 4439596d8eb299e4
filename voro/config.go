// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"encoding/json"
	"os"

	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/verr"
)

// jsonBounds mirrors Bounds with exported coordinate fields suitable
// for direct JSON marshalling.
type jsonBounds struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// jsonConfig mirrors Config for JSON decoding.
type jsonConfig struct {
	Bounds         jsonBounds `json:"bounds"`
	Index          string     `json:"index"`
	GridNx         int        `json:"grid_nx"`
	GridNy         int        `json:"grid_ny"`
	GridNz         int        `json:"grid_nz"`
	OctreeCapacity int        `json:"octree_capacity"`
}

// LoadConfigJSON reads a Config from a JSON file: bounds (min/max
// triples) and spatial index parameters, in the same "read whole file,
// unmarshal into a plain struct" shape the teacher's own simulation
// config loader uses. "index" selects "grid" (default) or "octree".
func LoadConfigJSON(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, verr.Configf("load config %q: %v", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return Config{}, verr.Configf("parse config %q: %v", path, err)
	}

	cfg := Config{
		Bounds: Bounds{
			Min: pointFromArray(jc.Bounds.Min),
			Max: pointFromArray(jc.Bounds.Max),
		},
		GridNx:         jc.GridNx,
		GridNy:         jc.GridNy,
		GridNz:         jc.GridNz,
		OctreeCapacity: jc.OctreeCapacity,
	}
	switch jc.Index {
	case "", "grid":
		cfg.Index = IndexGrid
	case "octree":
		cfg.Index = IndexOctree
	default:
		return Config{}, verr.Configf("load config %q: unknown index kind %q", path, jc.Index)
	}
	return cfg, nil
}

func pointFromArray(a [3]float64) geom.Point { return geom.New(a[0], a[1], a[2]) }
