// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpmech/vorothree/geom"
)

func TestSphereWall(t *testing.T) {
	w := Wall{Kind: KindSphere, Sphere: SphereData{C: geom.New(0, 0, 0), R: 0.5}}
	assert.True(t, w.Contains(geom.New(0.1, 0, 0)))
	assert.False(t, w.Contains(geom.New(1, 0, 0)))
	pl, ok := w.NearestPlane(geom.New(1, 0, 0))
	assert.True(t, ok)
	assert.InDelta(t, 0.5, pl.Q.X, 1e-12)
	assert.InDelta(t, 1.0, pl.Nu.X, 1e-12)
}

func TestPlaneWall(t *testing.T) {
	w := Wall{Kind: KindPlane, Plane: PlaneData{Q: geom.New(1, 0, 0), Nu: geom.New(1, 0, 0)}}
	assert.True(t, w.Contains(geom.New(0, 0, 0)))
	assert.False(t, w.Contains(geom.New(2, 0, 0)))
}

func TestCylinderWall(t *testing.T) {
	w := Wall{Kind: KindCylinder, Cylinder: CylinderData{A: geom.New(0, 0, 0), D: geom.New(0, 0, 1), R: 1.0}}
	assert.True(t, w.Contains(geom.New(0.5, 0, 5)))
	assert.False(t, w.Contains(geom.New(2, 0, 5)))
	pl, ok := w.NearestPlane(geom.New(2, 0, 5))
	assert.True(t, ok)
	assert.InDelta(t, 5.0, pl.Q.Z, 1e-9)
	assert.InDelta(t, 1.0, pl.Q.X, 1e-9)
}

func TestConeWall(t *testing.T) {
	w := Wall{Kind: KindCone, Cone: ConeData{A: geom.New(0, 0, 0), D: geom.New(0, 0, 1), HalfAngle: 0.5}}
	assert.True(t, w.Contains(geom.New(0, 0, 1)))
	assert.False(t, w.Contains(geom.New(0, 0, -1)))
}

func TestTorusWall(t *testing.T) {
	w := Wall{Kind: KindTorus, Torus: TorusData{C: geom.New(0, 0, 0), D: geom.New(0, 0, 1), Rmajor: 2, Rtube: 0.5}}
	assert.True(t, w.Contains(geom.New(2, 0, 0)))
	assert.False(t, w.Contains(geom.New(0, 0, 0)))
}

func TestPolyhedronWall(t *testing.T) {
	w := Wall{Kind: KindPolyhedron, Polyhedron: PolyhedronData{
		Points:  []geom.Point{geom.New(1, 0, 0), geom.New(-1, 0, 0), geom.New(0, 1, 0), geom.New(0, -1, 0), geom.New(0, 0, 1), geom.New(0, 0, -1)},
		Normals: []geom.Point{geom.New(1, 0, 0), geom.New(-1, 0, 0), geom.New(0, 1, 0), geom.New(0, -1, 0), geom.New(0, 0, 1), geom.New(0, 0, -1)},
	}}
	assert.True(t, w.Contains(geom.New(0, 0, 0)))
	assert.False(t, w.Contains(geom.New(2, 0, 0)))
}

func TestSweptTubePolyline(t *testing.T) {
	tube := NewSweptTubePolyline([]geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(2, 0, 0)}, 0.3, false)
	w := Wall{Kind: KindSweptTube, Sweep: tube}
	assert.True(t, w.Contains(geom.New(1, 0.1, 0)))
	assert.False(t, w.Contains(geom.New(1, 1, 0)))
}

func TestTrefoil(t *testing.T) {
	knot := NewTrefoil(geom.New(0, 0, 0), 1.0, 0.3, 256)
	w := Wall{Kind: KindTrefoil, Trefoil: knot}
	_, ok := w.NearestPlane(geom.New(3, 3, 3))
	assert.True(t, ok)
	assert.False(t, w.Contains(geom.New(100, 100, 100)))
}

type userSphere struct{ r float64 }

func (u userSphere) Contains(p geom.Point) bool { return p.NormSq() <= u.r*u.r }
func (u userSphere) NearestPlane(p geom.Point) (Plane, bool) {
	d := p.Unit()
	return Plane{Q: d.Scale(u.r), Nu: d}, true
}

func TestUserDefinedWall(t *testing.T) {
	w := Wall{Kind: KindUser, User: userSphere{r: 1}}
	assert.True(t, w.Contains(geom.New(0.5, 0, 0)))
	assert.False(t, w.Contains(geom.New(2, 0, 0)))
}
