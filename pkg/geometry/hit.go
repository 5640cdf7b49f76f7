package geometry

import (
	"math"

	"github.com/mkoster/go-whitted-raytracer/pkg/core"
)

// NoHitID is the reserved primitive id marking a HitRecord that hit
// nothing. Scene-assigned ids start at 0, so it can never collide.
const NoHitID = -2

// HitRecord contains information about a ray-primitive intersection
type HitRecord struct {
	T        float64   // Distance along the ray to the intersection
	Material Material  // Material of the hit primitive
	Point    core.Vec3 // World-space intersection point
	Normal   core.Vec3 // Unit surface normal (not meaningful for no-hit)
	ID       int       // Id of the hit primitive, NoHitID for no-hit
}

// NewNoHit returns the sentinel record a closest-hit search starts from:
// infinite distance, no primitive, neutral black matte material.
func NewNoHit(ray core.Ray) HitRecord {
	return HitRecord{
		T:      math.Inf(1),
		Point:  ray.Origin,
		Normal: ray.Origin,
		ID:     NoHitID,
	}
}

// Valid reports whether the record describes a real intersection
// rather than the no-hit sentinel.
func (h HitRecord) Valid() bool {
	return h.ID != NoHitID
}
