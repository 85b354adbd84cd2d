package cpu

import (
	"github.com/achilleasa/minimal/types"
	"github.com/go-gl/mathgl/mgl32"
)

// Rays whose direction is this close to the triangle plane are treated as
// parallel.
const parallelEpsilon = float32(1e-7)

// A committed triangle stored as its first vertex and two edges.
type triangle struct {
	v0     mgl32.Vec3
	e1, e2 mgl32.Vec3

	geomID uint32
	primID uint32
}

type triangleHit struct {
	t, u, v float32
}

func makeTriangle(v0, v1, v2 mgl32.Vec3, geomID, primID uint32) triangle {
	return triangle{
		v0:     v0,
		e1:     v1.Sub(v0),
		e2:     v2.Sub(v0),
		geomID: geomID,
		primID: primID,
	}
}

// Moller-Trumbore ray/triangle test. Edges and vertices count as part of
// the triangle and hits are accepted for tnear <= t <= tfar.
func (tri *triangle) intersect(org, dir mgl32.Vec3, tnear, tfar float32) (triangleHit, bool) {
	h := dir.Cross(tri.e2)
	a := tri.e1.Dot(h)
	if a > -parallelEpsilon && a < parallelEpsilon {
		return triangleHit{}, false
	}

	f := 1.0 / a
	s := org.Sub(tri.v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return triangleHit{}, false
	}

	q := s.Cross(tri.e1)
	v := f * dir.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return triangleHit{}, false
	}

	t := f * tri.e2.Dot(q)
	if t < tnear || t > tfar {
		return triangleHit{}, false
	}

	return triangleHit{t: t, u: u, v: v}, true
}

// Unnormalized geometry normal.
func (tri *triangle) normal() types.Vec3 {
	return types.Vec3(tri.e1.Cross(tri.e2))
}
