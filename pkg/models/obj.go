package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/softrender/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ParseOBJ reads vertex positions (v), texture coordinates (vt) and faces (f)
// from OBJ text. Indices are 1-based in the file (negative values count back
// from the most recent element) and are stored 0-based. Polygons with more
// than three corners are fan-triangulated. Texture V is flipped so that V=0
// is the top row of the texture image. Normals, groups and materials are
// ignored.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh := NewMesh("obj")
	var uvs []UV

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, math3d.V3(v[0], v[1], v[2]))

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			uvs = append(uvs, UV{U: v[0], V: 1 - v[1]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", lineNo, len(fields)-1)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				c, err := parseCorner(ref, len(mesh.Vertices), len(uvs))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, c)
			}
			for i := 1; i+1 < len(corners); i++ {
				a, b, c := corners[0], corners[i], corners[i+1]
				mesh.Faces = append(mesh.Faces, Face{
					A: a.vertex, B: b.vertex, C: c.vertex,
					AUV: lookupUV(uvs, a.uv), BUV: lookupUV(uvs, b.uv), CUV: lookupUV(uvs, c.uv),
					Color: ColorWhite,
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// objCorner is one v/vt/vn reference of a face, already 0-based.
// uv is -1 when the corner has no texture coordinate.
type objCorner struct {
	vertex int
	uv     int
}

func parseCorner(ref string, numVerts, numUVs int) (objCorner, error) {
	parts := strings.Split(ref, "/")

	v, err := resolveIndex(parts[0], numVerts)
	if err != nil {
		return objCorner{}, fmt.Errorf("vertex index %q: %w", ref, err)
	}

	c := objCorner{vertex: v, uv: -1}
	if len(parts) >= 2 && parts[1] != "" {
		uv, err := resolveIndex(parts[1], numUVs)
		if err != nil {
			return objCorner{}, fmt.Errorf("texcoord index %q: %w", ref, err)
		}
		c.uv = uv
	}
	return c, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index to 0-based.
func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += count
	default:
		return 0, ErrFaceIndex
	}
	if idx < 0 || idx >= count {
		return 0, ErrFaceIndex
	}
	return idx, nil
}

func lookupUV(uvs []UV, i int) UV {
	if i < 0 || i >= len(uvs) {
		return UV{}
	}
	return uvs[i]
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := range n {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
