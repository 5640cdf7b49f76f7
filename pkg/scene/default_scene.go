package scene

import (
	"github.com/mkoster/go-whitted-raytracer/pkg/core"
	"github.com/mkoster/go-whitted-raytracer/pkg/geometry"
)

// NewDefaultScene creates the built-in demo scene: a central mirror
// sphere flanked by a matte and a glossy sphere over a matte floor.
// Construction cannot fail, so Add errors are ignored.
func NewDefaultScene() *Scene {
	s := NewScene()

	mirror := geometry.NewMaterial(core.NewVec3(1, 1, 1), geometry.Reflective)
	red := geometry.NewMaterial(core.NewVec3(0.9, 0.2, 0.2), geometry.Matte)
	blue := geometry.NewMaterial(core.NewVec3(0.2, 0.3, 0.9), geometry.Glossy)
	gray := geometry.NewMaterial(core.NewVec3(0.6, 0.6, 0.6), geometry.Matte)

	s.AddSphere(core.NewVec3(0, 0.5, -16), 3, mirror)
	s.AddSphere(core.NewVec3(-4, -1, -12), 2, red)
	s.AddSphere(core.NewVec3(4, -1, -12), 2, blue)

	// Floor at y=-3, vertex order chosen so the fixed normal points up
	s.AddTriangle(
		core.NewVec3(-30, -3, -40),
		core.NewVec3(30, -3, -40),
		core.NewVec3(30, -3, 0),
		gray,
	)
	s.AddTriangle(
		core.NewVec3(-30, -3, -40),
		core.NewVec3(30, -3, 0),
		core.NewVec3(-30, -3, 0),
		gray,
	)

	return s
}
