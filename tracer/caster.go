package tracer

import (
	"github.com/achilleasa/minimal/rtc"
	"github.com/achilleasa/minimal/types"
)

// Cast a ray with the given origin and direction against a committed scene
// and return it with any hit information filled in. The direction does not
// need to be normalized.
func Intersect(sc rtc.Scene, org, dir types.Vec3) rtc.Ray {
	ray := rtc.NewRay(org, dir)
	sc.Intersect(&ray)
	return ray
}

// Cast a ray and report whether it hit any geometry.
func CastRay(sc rtc.Scene, org, dir types.Vec3) bool {
	ray := Intersect(sc, org, dir)
	return ray.Hit()
}
