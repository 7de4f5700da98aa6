package models

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/softrender/pkg/math3d"
)

// ErrNoGeometry is returned when a document holds no triangle primitives.
var ErrNoGeometry = errors.New("no triangle geometry")

// LoadGLB loads a glTF or GLB file, ignoring any texture.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return meshFromDocument(doc, filepath.Base(path))
}

// LoadGLBWithTexture loads a glTF or GLB file and returns the mesh plus the
// first image the document carries, embedded or referenced by URI.
// The image is nil when the document has none.
func LoadGLBWithTexture(path string) (*Mesh, image.Image, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := meshFromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}

	for _, img := range doc.Images {
		data := imageBytes(doc, img, filepath.Dir(path))
		if len(data) == 0 {
			continue
		}
		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err == nil {
			return mesh, decoded, nil
		}
	}
	return mesh, nil, nil
}

// Load picks a loader by file extension: .obj, .gltf or .glb.
// The returned image is nil unless the file embeds a texture.
func Load(path string) (*Mesh, image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		mesh, err := LoadOBJ(path)
		return mesh, nil, err
	case ".gltf", ".glb":
		return LoadGLBWithTexture(path)
	default:
		return nil, nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
	}
}

func meshFromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	for _, m := range doc.Meshes {
		if err := appendPrimitives(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoGeometry)
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// appendPrimitives adds every triangle-list primitive of m to mesh.
// glTF faces are counter-clockwise in a right-handed frame, which gives the
// same outward cross product as the clockwise left-handed convention, so
// corner order is kept as stored.
func appendPrimitives(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// lines and points
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var texcoords [][2]float32
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			texcoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
			if err != nil {
				return fmt.Errorf("read texcoords: %w", err)
			}
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		base := len(mesh.Vertices)
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		uvAt := func(i uint32) UV {
			if int(i) >= len(texcoords) {
				return UV{}
			}
			t := texcoords[i]
			return UV{U: float64(t[0]), V: float64(t[1])}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			mesh.Faces = append(mesh.Faces, Face{
				A: base + int(a), B: base + int(b), C: base + int(c),
				AUV: uvAt(a), BUV: uvAt(b), CUV: uvAt(c),
				Color: ColorWhite,
			})
		}
	}
	return nil
}

// imageBytes returns the encoded bytes of img from its buffer view or from a
// file next to the document.
func imageBytes(doc *gltf.Document, img *gltf.Image, dir string) []byte {
	if img.BufferView != nil {
		bv := doc.BufferViews[*img.BufferView]
		buf := doc.Buffers[bv.Buffer]
		end := bv.ByteOffset + bv.ByteLength
		if end > len(buf.Data) {
			return nil
		}
		return buf.Data[bv.ByteOffset:end]
	}
	if img.URI == "" {
		return nil
	}
	if img.IsEmbeddedResource() {
		data, err := img.MarshalData()
		if err != nil {
			return nil
		}
		return data
	}
	data, err := os.ReadFile(filepath.Join(dir, img.URI))
	if err != nil {
		return nil
	}
	return data
}
