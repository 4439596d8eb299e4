// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import "github.com/cpmech/vorothree/geom"

// SweptTubeData keeps the interior of a tube of radius Radius swept
// along a precomputed polyline Samples, closed into a loop if Closed.
// Bézier and Catmull-Rom inputs are sampled down to this polyline once,
// at construction time, by NewSweptTubeBezier / NewSweptTubeCatmullRom;
// NewSweptTubePolyline uses the caller's points directly.
type SweptTubeData struct {
	Samples []geom.Point
	Radius  float64
	Closed  bool
}

// NewSweptTubePolyline builds a swept-tube wall directly from a
// polyline.
func NewSweptTubePolyline(points []geom.Point, radius float64, closed bool) SweptTubeData {
	return SweptTubeData{Samples: points, Radius: radius, Closed: closed}
}

// NewSweptTubeBezier samples a piecewise cubic Bézier curve through
// control points (3n+1 points for n segments, sharing endpoints) into
// samplesPerSeg points per segment.
func NewSweptTubeBezier(control []geom.Point, samplesPerSeg int, radius float64, closed bool) SweptTubeData {
	var pts []geom.Point
	n := (len(control) - 1) / 3
	for seg := 0; seg < n; seg++ {
		p0, p1, p2, p3 := control[3*seg], control[3*seg+1], control[3*seg+2], control[3*seg+3]
		for k := 0; k < samplesPerSeg; k++ {
			t := float64(k) / float64(samplesPerSeg)
			pts = append(pts, cubicBezier(p0, p1, p2, p3, t))
		}
	}
	if !closed {
		pts = append(pts, control[len(control)-1])
	}
	return SweptTubeData{Samples: pts, Radius: radius, Closed: closed}
}

func cubicBezier(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	a := p0.Scale(mt * mt * mt)
	b := p1.Scale(3 * mt * mt * t)
	c := p2.Scale(3 * mt * t * t)
	d := p3.Scale(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// NewSweptTubeCatmullRom samples a Catmull-Rom spline through points
// into samplesPerSeg points per segment; if closed, the spline wraps
// around through points[0] again.
func NewSweptTubeCatmullRom(points []geom.Point, samplesPerSeg int, radius float64, closed bool) SweptTubeData {
	n := len(points)
	segs := n - 1
	if closed {
		segs = n
	}
	at := func(i int) geom.Point {
		if closed {
			return points[((i%n)+n)%n]
		}
		if i < 0 {
			return points[0]
		}
		if i >= n {
			return points[n-1]
		}
		return points[i]
	}
	var pts []geom.Point
	for seg := 0; seg < segs; seg++ {
		p0, p1, p2, p3 := at(seg-1), at(seg), at(seg+1), at(seg+2)
		for k := 0; k < samplesPerSeg; k++ {
			t := float64(k) / float64(samplesPerSeg)
			pts = append(pts, catmullRom(p0, p1, p2, p3, t))
		}
	}
	if !closed {
		pts = append(pts, points[n-1])
	}
	return SweptTubeData{Samples: pts, Radius: radius, Closed: closed}
}

func catmullRom(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	t2 := t * t
	t3 := t2 * t
	a := p1.Scale(2)
	b := p2.Sub(p0).Scale(t)
	c := p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(t2)
	d := p1.Scale(3).Sub(p0).Sub(p2.Scale(3)).Add(p3).Scale(t3)
	return a.Add(b).Add(c).Add(d).Scale(0.5)
}

func (o SweptTubeData) segCount() int {
	if len(o.Samples) < 2 {
		return 0
	}
	if o.Closed {
		return len(o.Samples)
	}
	return len(o.Samples) - 1
}

func (o SweptTubeData) seg(i int) (a, b geom.Point) {
	a = o.Samples[i]
	if o.Closed {
		b = o.Samples[(i+1)%len(o.Samples)]
	} else {
		b = o.Samples[i+1]
	}
	return
}

// nearestOnCenterline returns the closest point on the centreline
// polyline to p and the squared distance to it.
func (o SweptTubeData) nearestOnCenterline(p geom.Point) (geom.Point, float64) {
	best := o.Samples[0]
	bestSq := p.DistSq(best)
	for i := 0; i < o.segCount(); i++ {
		a, b := o.seg(i)
		q := closestOnSegment(p, a, b)
		d := p.DistSq(q)
		if d < bestSq {
			bestSq = d
			best = q
		}
	}
	return best, bestSq
}

func closestOnSegment(p, a, b geom.Point) geom.Point {
	ab := b.Sub(a)
	denom := ab.NormSq()
	if denom < 1e-300 {
		return a
	}
	t := p.Sub(a).Dot(ab) / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

// Contains reports whether p lies within the tube.
func (o SweptTubeData) Contains(p geom.Point) bool {
	_, dSq := o.nearestOnCenterline(p)
	return dSq <= o.Radius*o.Radius
}

// NearestPlane returns the tangent plane at the tube surface point
// nearest p.
func (o SweptTubeData) NearestPlane(p geom.Point) (Plane, bool) {
	center, _ := o.nearestOnCenterline(p)
	dir := p.Sub(center)
	if dir.NormSq() < 1e-300 {
		dir = geom.New(1, 0, 0)
	} else {
		dir = dir.Unit()
	}
	q := center.Add(dir.Scale(o.Radius))
	return Plane{Q: q, Nu: dir}, true
}
