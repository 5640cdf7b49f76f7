package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mkoster/go-whitted-raytracer/pkg/core"
	"github.com/mkoster/go-whitted-raytracer/pkg/geometry"
)

// Load parses a .ray scene description from r. The format is one
// primitive per line:
//
//	sphere,(cx cy cz),radius,(r g b),matte|glossy|refl[,legacy-id]
//	triangle,(ax ay az),(bx by bz),(cx cy cz),(r g b),matte|glossy|refl[,legacy-id]
//
// Blank lines and lines starting with # are skipped. Trailing id fields
// from legacy files are ignored: ids are assigned by the scene. Unknown
// material kinds fall back to matte, matching the original format's
// leniency; anything else malformed is an error.
func Load(r io.Reader) (*Scene, error) {
	s := NewScene()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := parseLine(s, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	return s, nil
}

// LoadFile parses a .ray scene description from the named file
func LoadFile(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

func parseLine(s *Scene, line string) error {
	fields := strings.Split(line, ",")
	switch fields[0] {
	case "sphere":
		return parseSphere(s, fields[1:])
	case "triangle":
		return parseTriangle(s, fields[1:])
	default:
		return fmt.Errorf("unknown primitive %q", fields[0])
	}
}

func parseSphere(s *Scene, fields []string) error {
	if len(fields) < 4 {
		return fmt.Errorf("sphere needs center, radius, color and kind, got %d fields", len(fields))
	}

	center, err := parseVec(fields[0])
	if err != nil {
		return fmt.Errorf("sphere center: %w", err)
	}
	radius, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return fmt.Errorf("sphere radius: %w", err)
	}
	material, err := parseMaterial(fields[2], fields[3])
	if err != nil {
		return err
	}

	_, err = s.AddSphere(center, radius, material)
	return err
}

func parseTriangle(s *Scene, fields []string) error {
	if len(fields) < 5 {
		return fmt.Errorf("triangle needs three vertices, color and kind, got %d fields", len(fields))
	}

	var vertices [3]core.Vec3
	for i := 0; i < 3; i++ {
		v, err := parseVec(fields[i])
		if err != nil {
			return fmt.Errorf("triangle vertex %d: %w", i, err)
		}
		vertices[i] = v
	}
	material, err := parseMaterial(fields[3], fields[4])
	if err != nil {
		return err
	}

	_, err = s.AddTriangle(vertices[0], vertices[1], vertices[2], material)
	return err
}

func parseMaterial(colorField, kindField string) (geometry.Material, error) {
	color, err := parseVec(colorField)
	if err != nil {
		return geometry.Material{}, fmt.Errorf("color: %w", err)
	}
	return geometry.NewMaterial(color, parseKind(kindField)), nil
}

func parseKind(field string) geometry.MaterialKind {
	switch strings.TrimSpace(field) {
	case "glossy":
		return geometry.Glossy
	case "refl":
		return geometry.Reflective
	default:
		return geometry.Matte
	}
}

// parseVec parses a "(x y z)" vector field
func parseVec(field string) (core.Vec3, error) {
	trimmed := strings.TrimSpace(field)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return core.Vec3{}, fmt.Errorf("expected (x y z), got %q", field)
	}

	parts := strings.Fields(trimmed[1 : len(trimmed)-1])
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d in %q", len(parts), field)
	}

	var components [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d of %q: %w", i, field, err)
		}
		components[i] = value
	}

	return core.NewVec3(components[0], components[1], components[2]), nil
}
