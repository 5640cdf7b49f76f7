package scene

import (
	"fmt"

	"github.com/mkoster/go-whitted-raytracer/pkg/core"
	"github.com/mkoster/go-whitted-raytracer/pkg/geometry"
)

// Config contains scalar render configuration
type Config struct {
	Resolution      int     // Pixels per image side (image is square)
	ReflectionDepth int     // Maximum mirror bounces per pixel
	PlaneWidth      float64 // World-space width of the image plane
}

// DefaultConfig returns the reference defaults
func DefaultConfig() Config {
	return Config{
		Resolution:      512,
		ReflectionDepth: 10,
		PlaneWidth:      2.0,
	}
}

// Scene contains all the elements needed for rendering: the primitive
// collections, the single point light, the camera origin and the render
// configuration. Primitive ids are assigned here, sequentially across
// both collections, so they are unique by construction and never collide
// with the no-hit sentinel.
type Scene struct {
	Spheres      []geometry.Sphere
	Triangles    []geometry.Triangle
	Light        core.Vec3
	CameraOrigin core.Vec3
	Config       Config

	nextID int
}

// NewScene creates an empty scene with the reference light position,
// camera at the origin and default configuration
func NewScene() *Scene {
	return &Scene{
		Light:        core.NewVec3(-3, 8, -6),
		CameraOrigin: core.NewVec3(0, 0, 0),
		Config:       DefaultConfig(),
	}
}

// AddSphere validates and adds a sphere, returning its assigned id
func (s *Scene) AddSphere(center core.Vec3, radius float64, material geometry.Material) (int, error) {
	if radius <= 0 {
		return 0, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	sphere := geometry.NewSphere(center, radius, material)
	sphere.ID = s.takeID()
	s.Spheres = append(s.Spheres, sphere)
	return sphere.ID, nil
}

// AddTriangle validates and adds a triangle, returning its assigned id.
// Collinear vertices are rejected since a degenerate triangle has no
// surface normal.
func (s *Scene) AddTriangle(a, b, c core.Vec3, material geometry.Material) (int, error) {
	if b.Subtract(a).Cross(c.Subtract(a)).LengthSquared() == 0 {
		return 0, fmt.Errorf("degenerate triangle: vertices %v, %v, %v are collinear", a, b, c)
	}
	triangle := geometry.NewTriangle(a, b, c, material)
	triangle.ID = s.takeID()
	s.Triangles = append(s.Triangles, triangle)
	return triangle.ID, nil
}

func (s *Scene) takeID() int {
	id := s.nextID
	s.nextID++
	return id
}

// PrimitiveCount returns the total number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Spheres) + len(s.Triangles)
}
