package geometry

import (
	"math"
	"testing"

	"github.com/mkoster/go-whitted-raytracer/pkg/core"
)

// testTriangle lies in the z=-5 plane with centroid (0, -1/3, -5)
func testTriangle() Triangle {
	tr := NewTriangle(
		core.NewVec3(-1, -1, -5),
		core.NewVec3(1, -1, -5),
		core.NewVec3(0, 1, -5),
		NewMaterial(core.NewVec3(0, 1, 0), Matte),
	)
	tr.ID = 5
	return tr
}

func TestTriangle_Hit_ThroughCentroid(t *testing.T) {
	tr := testTriangle()
	ray := core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, -1))

	hit := tr.Hit(ray, NewNoHit(ray))

	if !hit.Valid() {
		t.Fatal("Expected hit through centroid, got sentinel")
	}

	const tolerance = 1e-9
	if math.Abs(hit.T-5) > tolerance {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, -1.0/3.0, -5)).Length() > tolerance {
		t.Errorf("Expected point at centroid, got %v", hit.Point)
	}
	if hit.ID != 5 {
		t.Errorf("Expected id 5, got %d", hit.ID)
	}
}

func TestTriangle_Hit_OutsideReturnsBestUnchanged(t *testing.T) {
	tr := testTriangle()

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"beside the triangle", core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))},
		{"pointing away", core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, 1))},
		{"past a vertex", core.NewRay(core.NewVec3(0, 1.1, 0), core.NewVec3(0, 0, -1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := NewNoHit(tt.ray)
			hit := tr.Hit(tt.ray, best)
			if hit != best {
				t.Errorf("Expected best unchanged, got %+v", hit)
			}
		})
	}
}

func TestTriangle_Hit_KeepsCloserBest(t *testing.T) {
	tr := testTriangle()
	ray := core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, -1))

	// A best hit at t=3 is closer than the triangle at t=5
	best := HitRecord{T: 3, ID: 7, Point: ray.At(3)}
	hit := tr.Hit(ray, best)

	if hit != best {
		t.Errorf("Expected closer best to win, got %+v", hit)
	}
}

func TestTriangle_Hit_ImprovesFartherBest(t *testing.T) {
	tr := testTriangle()
	ray := core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, -1))

	best := HitRecord{T: 9, ID: 7, Point: ray.At(9)}
	hit := tr.Hit(ray, best)

	if hit.ID != tr.ID {
		t.Fatalf("Expected triangle to replace farther best, got id %d", hit.ID)
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
}

func TestTriangle_Normal_FixedOrientation(t *testing.T) {
	tr := testTriangle()

	// normalize(cross(C-A, B-A)) for this vertex order points toward -z
	expected := core.NewVec3(0, 0, -1)

	const tolerance = 1e-9
	if tr.Normal().Subtract(expected).Length() > tolerance {
		t.Fatalf("Expected normal %v, got %v", expected, tr.Normal())
	}

	// The reported normal does not flip with the approach direction
	front := core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, -1))
	back := core.NewRay(core.NewVec3(0, -1.0/3.0, -10), core.NewVec3(0, 0, 1))

	for _, ray := range []core.Ray{front, back} {
		hit := tr.Hit(ray, NewNoHit(ray))
		if !hit.Valid() {
			t.Fatal("Expected hit")
		}
		if hit.Normal.Subtract(expected).Length() > tolerance {
			t.Errorf("Expected normal %v regardless of approach, got %v", expected, hit.Normal)
		}
	}
}
