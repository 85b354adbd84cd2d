package rtc

import (
	"math"

	"github.com/achilleasa/minimal/types"
)

// Marks unset geometry, primitive and instance ids.
const InvalidGeometryID = ^uint32(0)

// A ray query. Intersect reads the origin, direction and [TNear, TFar]
// range and on a hit overwrites TFar with the hit distance and fills in the
// hit fields.
type Ray struct {
	Org types.Vec3
	Dir types.Vec3

	TNear float32
	TFar  float32

	// Unnormalized geometry normal and barycentric coordinates of the hit.
	Ng   types.Vec3
	U, V float32

	GeomID uint32
	PrimID uint32
	InstID uint32
}

// Create a ray covering [0, +inf) with all hit ids cleared. The direction
// does not need to be normalized.
func NewRay(org, dir types.Vec3) Ray {
	return Ray{
		Org:    org,
		Dir:    dir,
		TNear:  0,
		TFar:   float32(math.Inf(1)),
		GeomID: InvalidGeometryID,
		PrimID: InvalidGeometryID,
		InstID: InvalidGeometryID,
	}
}

// Returns true if an intersection query found a hit.
func (r *Ray) Hit() bool {
	return r.GeomID != InvalidGeometryID
}

// Get the point at the ray's current TFar distance.
func (r *Ray) HitPoint() types.Vec3 {
	return r.Org.Add(r.Dir.Mul(r.TFar))
}
