package render

import (
	"math"

	"github.com/taigrr/softrender/pkg/math3d"
)

// Camera is a fixed-orientation camera looking down +Z. Moving it shifts the
// whole scene; it never rotates.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / height
	Near        float64 // Near plane
	Far         float64 // Far plane

	projMatrix math3d.Mat4
	projDirty  bool
}

// NewCamera creates a camera at the origin with a 60 degree field of view.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.Zero3(),
		FOV:         math.Pi / 3,
		AspectRatio: 4.0 / 3.0,
		Near:        0.1,
		Far:         100,
		projDirty:   true,
	}
}

// SetFOV sets the vertical field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets width / height.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetViewport sets the aspect ratio from a pixel size.
func (c *Camera) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	c.SetAspectRatio(float64(width) / float64(height))
}

// SetClipPlanes sets the near and far planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// ViewMatrix moves world space so the camera sits at the origin.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return math3d.Translate(c.Position.Negate())
}

// ProjectionMatrix returns the left-handed perspective matrix, rebuilt
// only after a parameter changed.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// ToScreen projects a view-space point and maps it to pixel coordinates.
// The result holds screen x and y, NDC z, and the view depth in W.
// ok is false for points at or behind the camera plane, and for points so
// close to it that the divide overflows.
func (c *Camera) ToScreen(view math3d.Vec4, width, height int) (math3d.Vec4, bool) {
	ndc, ok := c.ProjectionMatrix().Project(view)
	if !ok {
		return math3d.Vec4{}, false
	}

	halfW := float64(width) / 2
	halfH := float64(height) / 2
	ndc.X = ndc.X*halfW + halfW
	ndc.Y = -ndc.Y*halfH + halfH
	if !finite(ndc.X) || !finite(ndc.Y) {
		return math3d.Vec4{}, false
	}
	return ndc, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
