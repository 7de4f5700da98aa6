package render

import (
	"github.com/taigrr/softrender/pkg/arena"
	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/models"
)

// TransformMesh runs every face of mesh through world transform, backface
// culling, projection and viewport mapping, pushing survivors onto dst in
// face order. Faces with a corner at or behind the camera plane, or one
// that projects off to infinity, are dropped. It returns the number of triangles pushed.
func TransformMesh(dst *arena.Arena[Triangle], mesh *models.Mesh, cam *Camera, light models.Light, cull CullMode, width, height int) int {
	world := mesh.WorldMatrix()
	view := cam.ViewMatrix()
	emitted := 0

	for _, face := range mesh.Faces {
		var worldPts [3]math3d.Vec3
		for i, idx := range face.Indices() {
			worldPts[i] = world.MulVec4(math3d.V4FromV3(mesh.Vertices[idx])).Vec3()
		}

		normal := math3d.FaceNormal(worldPts[0], worldPts[1], worldPts[2])
		if cull == CullBackface {
			ray := cam.Position.Sub(worldPts[0])
			if normal.Dot(ray) < 0 {
				continue
			}
		}

		var tri Triangle
		visible := true
		depth := 0.0
		for i, p := range worldPts {
			v := view.MulVec4(math3d.V4FromV3(p))
			depth += v.Z

			screen, ok := cam.ToScreen(v, width, height)
			if !ok {
				visible = false
				break
			}
			tri.Points[i] = screen
		}
		if !visible {
			continue
		}

		tri.TexCoords = face.UVs()
		tri.Color = face.Color
		tri.Intensity = light.Intensity(normal)
		tri.AvgDepth = depth / 3

		dst.Push(tri)
		emitted++
	}
	return emitted
}
