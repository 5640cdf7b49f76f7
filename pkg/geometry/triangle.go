package geometry

import "github.com/mkoster/go-whitted-raytracer/pkg/core"

// Triangle represents a triangle primitive defined by three vertices
type Triangle struct {
	A, B, C  core.Vec3
	Material Material
	ID       int
}

// NewTriangle creates a new triangle. The id is assigned when the
// triangle is added to a scene.
func NewTriangle(a, b, c core.Vec3, material Material) Triangle {
	return Triangle{A: a, B: b, C: c, Material: material}
}

// Normal returns the triangle's unit surface normal,
// normalize(cross(C-A, B-A)). The orientation is fixed by vertex order
// and is not flipped for back-face hits.
func (tr Triangle) Normal() core.Vec3 {
	return tr.C.Subtract(tr.A).Cross(tr.B.Subtract(tr.A)).Normalize()
}

// Hit runs the barycentric ray-triangle test via Cramer's rule and folds
// the result over a current best hit: it returns best unchanged unless
// this triangle is hit strictly closer, in which case it returns the new
// record. Designed to be folded across all triangles in one pass.
func (tr Triangle) Hit(ray core.Ray, best HitRecord) HitRecord {
	// 3x3 system from edge vectors A-B, A-C and the ray direction,
	// right-hand side A-O (Shirley's barycentric formulation)
	a := tr.A.X - tr.B.X
	b := tr.A.Y - tr.B.Y
	c := tr.A.Z - tr.B.Z
	d := tr.A.X - tr.C.X
	e := tr.A.Y - tr.C.Y
	f := tr.A.Z - tr.C.Z
	g := ray.Direction.X
	h := ray.Direction.Y
	i := ray.Direction.Z
	j := tr.A.X - ray.Origin.X
	k := tr.A.Y - ray.Origin.Y
	l := tr.A.Z - ray.Origin.Z

	m := a*(e*i-h*f) + b*(g*f-d*i) + c*(d*h-e*g)

	t := -(f*(a*k-j*b) + e*(j*c-a*l) + d*(b*l-k*c)) / m
	if t < 0 || t > best.T {
		return best
	}

	// gamma weights vertex C, beta weights vertex B; together with
	// alpha = 1-beta-gamma they must describe a point inside the triangle
	gamma := (i*(a*k-j*b) + h*(j*c-a*l) + g*(b*l-k*c)) / m
	if gamma < 0 || gamma > 1 {
		return best
	}

	beta := (j*(e*i-h*f) + k*(g*f-d*i) + l*(d*h-e*g)) / m
	if beta < 0 || beta > 1-gamma {
		return best
	}

	return HitRecord{
		T:        t,
		Material: tr.Material,
		Point:    ray.At(t),
		Normal:   tr.Normal(),
		ID:       tr.ID,
	}
}
