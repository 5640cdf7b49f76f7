package geometry

import "github.com/mkoster/go-whitted-raytracer/pkg/core"

// MaterialKind selects the shading behavior of a surface. The set is
// closed: every material is exactly one of matte, glossy or reflective.
type MaterialKind int

const (
	// Matte surfaces receive diffuse lighting only.
	// The zero value, so a zero Material is black matte.
	Matte MaterialKind = iota
	// Glossy surfaces receive diffuse lighting plus a specular highlight.
	Glossy
	// Reflective surfaces mirror the incoming ray instead of being lit.
	Reflective
)

// String returns the scene-file name of the material kind
func (k MaterialKind) String() string {
	switch k {
	case Glossy:
		return "glossy"
	case Reflective:
		return "refl"
	default:
		return "matte"
	}
}

// Material is a surface color paired with a shading behavior.
// It is attached by value to every primitive.
type Material struct {
	Color core.Vec3
	Kind  MaterialKind
}

// NewMaterial creates a new material
func NewMaterial(color core.Vec3, kind MaterialKind) Material {
	return Material{Color: color, Kind: kind}
}
