package renderer

import "github.com/mkoster/go-whitted-raytracer/pkg/core"

// focalDistance is the distance from the eye to the image plane along -z
const focalDistance = 2.0

// Camera maps integer pixel coordinates in an NxN image to primary rays
// through a fixed-size image plane centered on the optical axis. The
// plane's world-space width is independent of resolution, so higher
// resolutions just sample the same frame more densely.
type Camera struct {
	origin     core.Vec3
	pixelWidth float64
	halfPlane  float64
}

// NewCamera creates a camera at origin for a square image of the given
// resolution and world-space plane width
func NewCamera(origin core.Vec3, planeWidth float64, resolution int) *Camera {
	return &Camera{
		origin:     origin,
		pixelWidth: planeWidth / float64(resolution),
		halfPlane:  planeWidth / 2,
	}
}

// GetRay returns the primary ray through the center of pixel (x, y).
// The y axis is inverted so that image row 0 is the top of the frame.
func (c *Camera) GetRay(x, y int) core.Ray {
	imgX := float64(x)*c.pixelWidth + c.pixelWidth/2 - c.halfPlane
	imgY := -(float64(y)*c.pixelWidth + c.pixelWidth/2 - c.halfPlane)

	direction := core.NewVec3(imgX, imgY, -focalDistance).Normalize()
	return core.NewRay(c.origin, direction)
}
