package geometry

import (
	"math"

	"github.com/mkoster/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material Material
	ID       int
}

// NewSphere creates a new sphere. The id is assigned when the sphere is
// added to a scene.
func NewSphere(center core.Vec3, radius float64, material Material) Sphere {
	return Sphere{Center: center, Radius: radius, Material: material}
}

// Intersect solves |O + tD - C|^2 = r^2 for the ray and returns the
// distance to the preferred root, or -1 when the ray misses entirely.
// Both roots negative means the sphere is behind the ray origin; the
// smaller root is returned as-is and callers must reject t <= 0.
func (s Sphere) Intersect(ray core.Ray) float64 {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients: (D.D)t^2 + 2(D.oc)t + (oc.oc - r^2) = 0
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant < 0 {
		return -1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / a
	t2 := (-b - sqrtD) / a

	// Prefer the nearer surface in front of the origin
	if t1 < 0 {
		return t2
	}
	if t2 < 0 {
		return t1
	}
	return math.Min(t1, t2)
}

// Hit builds the hit record for the ray against this sphere. The record
// is unfiltered: its T may be negative or -1 and must pass the caller's
// t > 0 check before being adopted.
func (s Sphere) Hit(ray core.Ray) HitRecord {
	t := s.Intersect(ray)
	point := ray.At(t)
	return HitRecord{
		T:        t,
		Material: s.Material,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		ID:       s.ID,
	}
}
