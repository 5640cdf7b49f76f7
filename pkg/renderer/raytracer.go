package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/mkoster/go-whitted-raytracer/pkg/core"
	"github.com/mkoster/go-whitted-raytracer/pkg/geometry"
	"github.com/mkoster/go-whitted-raytracer/pkg/scene"
)

const (
	// ambientFloor keeps shadowed and grazing surfaces from going fully
	// black: it is both the shadow value and the minimum diffuse term
	ambientFloor = 0.2

	// specularExponent is the fixed Phong highlight exponent
	specularExponent = 11.0

	// noExcludeID is passed to the closest-hit search for primary rays,
	// which have no originating primitive to exclude
	noExcludeID = -1
)

// Raytracer renders a scene by casting one ray per pixel and resolving
// its color through the diffuse/specular/reflective shading pipeline.
// It holds only read-only scene data, so one scene can back many
// raytracers concurrently.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	size   int
}

// NewRaytracer creates a new raytracer for the scene, sized from the
// scene's configuration
func NewRaytracer(sc *scene.Scene) *Raytracer {
	return &Raytracer{
		scene:  sc,
		camera: NewCamera(sc.CameraOrigin, sc.Config.PlaneWidth, sc.Config.Resolution),
		size:   sc.Config.Resolution,
	}
}

// FindClosestHit scans every primitive for the nearest intersection
// strictly ahead of the ray origin, skipping the primitive with the
// excluded id to prevent shadow and reflection acne. It returns the
// no-hit sentinel when nothing valid is hit.
func (rt *Raytracer) FindClosestHit(ray core.Ray, excludeID int) geometry.HitRecord {
	best := geometry.NewNoHit(ray)

	for i := range rt.scene.Spheres {
		candidate := rt.scene.Spheres[i].Hit(ray)
		if candidate.T > 0 && candidate.T < best.T && candidate.ID != excludeID {
			best = candidate
		}
	}

	for i := range rt.scene.Triangles {
		candidate := rt.scene.Triangles[i].Hit(ray, best)
		if candidate.T > 0 && candidate.T < best.T && candidate.ID != excludeID {
			best = candidate
		}
	}

	return best
}

// shadowed reports whether an opaque primitive blocks the segment from
// point to the light, excluding the surface the point lies on
func (rt *Raytracer) shadowed(point core.Vec3, id int, stats *RenderStats) bool {
	toLight := rt.scene.Light.Subtract(point)

	stats.ShadowRays++
	blocker := rt.FindClosestHit(core.NewRay(point, toLight.Normalize()), id)

	return blocker.T > 0 && toLight.Length() > blocker.T
}

// diffuse computes the Lambertian term for a hit: the cosine between the
// surface normal and the light direction, floored at the ambient value,
// or the bare ambient value when the light is blocked
func (rt *Raytracer) diffuse(hit geometry.HitRecord, stats *RenderStats) float64 {
	if rt.shadowed(hit.Point, hit.ID, stats) {
		return ambientFloor
	}

	toLight := rt.scene.Light.Subtract(hit.Point).Normalize()
	return clamp(toLight.Dot(hit.Normal), ambientFloor, 1.0)
}

// specular computes the Phong highlight for a hit: the cosine between
// the light direction mirrored about the surface normal and the view
// direction, raised to the fixed exponent. Zero when the light is
// blocked or the geometry faces away.
func (rt *Raytracer) specular(hit geometry.HitRecord, stats *RenderStats) float64 {
	if rt.shadowed(hit.Point, hit.ID, stats) {
		return 0
	}

	lightDir := rt.scene.Light.Subtract(hit.Point).Normalize()
	reflected := hit.Normal.Multiply(2 * hit.Normal.Dot(lightDir)).Subtract(lightDir)
	view := rt.scene.CameraOrigin.Subtract(hit.Point).Normalize()

	highlight := math.Pow(reflected.Normalize().Dot(view), specularExponent)
	return clamp(highlight, 0, 1)
}

// shade resolves a non-reflective hit to a color: material color scaled
// by the diffuse term, with the specular highlight added for glossy
// surfaces
func (rt *Raytracer) shade(hit geometry.HitRecord, stats *RenderStats) core.Vec3 {
	c := hit.Material.Color.Multiply(rt.diffuse(hit, stats))
	if hit.Material.Kind == geometry.Glossy {
		s := rt.specular(hit, stats)
		c = c.Add(core.NewVec3(s, s, s))
	}
	return c
}

// traceReflection follows a chain of mirror bounces from an initial
// reflective hit, up to the configured depth bound. The chain resolves
// to the shading of the first non-reflective surface it lands on, or to
// black if it escapes to empty space or exhausts the bound while still
// on mirrors.
func (rt *Raytracer) traceReflection(ray core.Ray, hit geometry.HitRecord, stats *RenderStats) core.Vec3 {
	escaped := false

	for bounce := 0; bounce < rt.scene.Config.ReflectionDepth; bounce++ {
		if hit.Material.Kind != geometry.Reflective {
			break
		}

		direction := ray.Direction.Reflect(hit.Normal).Normalize()
		ray = core.NewRay(hit.Point, direction)

		stats.ReflectionBounces++
		hit = rt.FindClosestHit(ray, hit.ID)
		if !hit.Valid() {
			escaped = true
			break
		}
	}

	if escaped || hit.Material.Kind == geometry.Reflective {
		return core.Vec3{}
	}
	return rt.shade(hit, stats)
}

// PixelColor computes the color of pixel (x, y) as a [0,1]-range vector.
// Background pixels are black.
func (rt *Raytracer) PixelColor(x, y int, stats *RenderStats) core.Vec3 {
	ray := rt.camera.GetRay(x, y)

	stats.PrimaryRays++
	hit := rt.FindClosestHit(ray, noExcludeID)
	if !hit.Valid() {
		return core.Vec3{}
	}
	stats.HitPixels++

	if hit.Material.Kind == geometry.Reflective {
		return rt.traceReflection(ray, hit, stats)
	}
	return rt.shade(hit, stats)
}

// RenderBounds renders the pixels within bounds into img. Bounds given
// to concurrent calls must not overlap; img writes are per-pixel.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	var stats RenderStats

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			stats.TotalPixels++
			img.SetRGBA(x, y, vec3ToColor(rt.PixelColor(x, y, &stats)))
		}
	}

	return stats
}

// RenderPass renders the full image sequentially and returns it with
// render statistics
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.size, rt.size))
	stats := rt.RenderBounds(img.Bounds(), img)
	return img, stats
}

// vec3ToColor converts a color vector to 8-bit RGBA, clamping to [0,1]
// first so bright highlights saturate instead of wrapping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

func clamp(value, minVal, maxVal float64) float64 {
	return max(minVal, min(maxVal, value))
}
