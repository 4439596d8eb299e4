// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"math/rand"

	"github.com/cpmech/vorothree/geom"
	"github.com/cpmech/vorothree/verr"
	"github.com/cpmech/vorothree/wall"
)

// RandomGenerators replaces every generator with n points sampled
// uniformly at random inside the bounds and satisfying every configured
// wall's Contains, using rng (pass a seeded *rand.Rand for
// reproducibility in tests). It gives up with a ConfigError if it
// cannot find n accepted samples within a generous number of attempts,
// which only happens when the walls leave little or no volume to
// sample from.
func (o *Tessellation) RandomGenerators(n int, rng *rand.Rand) error {
	box := o.t.Box
	e := box.Extent()
	const maxAttemptsPerPoint = 10000

	coords := make([]float64, 0, 3*n)
	for len(coords) < 3*n {
		accepted := false
		for attempt := 0; attempt < maxAttemptsPerPoint; attempt++ {
			p := geom.New(
				box.Min.X+rng.Float64()*e.X,
				box.Min.Y+rng.Float64()*e.Y,
				box.Min.Z+rng.Float64()*e.Z,
			)
			if containsAllWalls(o.t.Walls, p) {
				coords = append(coords, p.X, p.Y, p.Z)
				accepted = true
				break
			}
		}
		if !accepted {
			return verr.Configf("random_generators: could not find a point satisfying every wall after %d attempts (walls may leave too little volume)", maxAttemptsPerPoint)
		}
	}
	return o.SetGenerators(coords)
}

func containsAllWalls(walls []wall.Wall, p geom.Point) bool {
	for _, w := range walls {
		if !w.Contains(p) {
			return false
		}
	}
	return true
}
