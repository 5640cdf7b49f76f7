package renderer

// RenderStats contains counters for a completed render or tile
type RenderStats struct {
	TotalPixels       int // Pixels rendered
	HitPixels         int // Pixels whose primary ray hit geometry
	PrimaryRays       int // Primary rays cast
	ShadowRays        int // Shadow rays cast by diffuse/specular terms
	ReflectionBounces int // Mirror bounces traced
}

// Merge accumulates another tile's counters into this one
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.HitPixels += other.HitPixels
	rs.PrimaryRays += other.PrimaryRays
	rs.ShadowRays += other.ShadowRays
	rs.ReflectionBounces += other.ReflectionBounces
}
