package render

import (
	"fmt"
	"math"

	"github.com/taigrr/softrender/pkg/arena"
	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/models"
)

// Options configures a RenderContext.
type Options struct {
	Width  int
	Height int

	FOV  float64 // vertical field of view in radians
	Near float64
	Far  float64

	Light math3d.Vec3 // direction the light travels

	Mode RenderMode
	Cull CullMode

	Background  uint32
	GridColor   uint32
	GridSpacing int // 0 disables the grid
	WireColor   uint32
	VertexColor uint32

	// PerspectiveCorrect interpolates texture coordinates over 1/w.
	PerspectiveCorrect bool
}

// DefaultOptions returns an 800x600 setup: 60 degree FOV, light along +Z,
// filled shading with wireframe, backface culling, black background and a
// dotted grid every 20 pixels.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		FOV:         math.Pi / 3,
		Near:        0.1,
		Far:         100,
		Light:       math3d.V3(0, 0, 1),
		Mode:        ModeFilledWire,
		Cull:        CullBackface,
		Background:  ColorBlack,
		GridColor:   ColorGrid,
		GridSpacing: 20,
		WireColor:   ColorWire,
		VertexColor: ColorVertex,
	}
}

// Phase is the state of the per-frame triangle buffer.
type Phase int

const (
	PhaseEmpty     Phase = iota // reset, nothing transformed yet
	PhasePopulated              // transform stage has run
	PhaseSorted                 // ordered back to front
	PhaseConsumed               // drawn into the color buffer
	PhaseDiscarded              // cleared for the next frame
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePopulated:
		return "populated"
	case PhaseSorted:
		return "sorted"
	case PhaseConsumed:
		return "consumed"
	case PhaseDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// RenderContext owns everything a frame needs: color buffer, camera, light,
// bound mesh and texture, and the triangle buffer reused across frames.
// It is not safe for concurrent use.
type RenderContext struct {
	opts    Options
	buf     *ColorBuffer
	raster  *Rasterizer
	camera  *Camera
	light   models.Light
	mesh    *models.Mesh
	texture *Texture
	tris    *arena.Arena[Triangle]
	phase   Phase
}

// NewRenderContext allocates the color buffer and sets up the camera from
// opts. A non-positive or overflowing size returns ErrInvalidSize.
func NewRenderContext(opts Options) (*RenderContext, error) {
	buf, err := NewColorBuffer(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	cam := NewCamera()
	cam.SetFOV(opts.FOV)
	cam.SetClipPlanes(opts.Near, opts.Far)
	cam.SetViewport(opts.Width, opts.Height)

	rc := &RenderContext{
		opts:    opts,
		buf:     buf,
		raster:  NewRasterizer(buf),
		camera:  cam,
		light:   models.NewLight(opts.Light),
		texture: DefaultTexture(),
		tris:    arena.New[Triangle](256),
	}

	Logger().Info("render context created",
		"width", opts.Width, "height", opts.Height,
		"mode", opts.Mode, "cull", opts.Cull)
	return rc, nil
}

// SetMesh validates and binds the mesh drawn by Frame.
func (rc *RenderContext) SetMesh(m *models.Mesh) error {
	if m == nil {
		return fmt.Errorf("bind mesh: nil mesh")
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("bind mesh: %w", err)
	}
	rc.mesh = m
	if c := m.TriangleCount(); c > rc.tris.Cap() {
		rc.tris = arena.New[Triangle](c)
	}
	Logger().Debug("mesh bound", "name", m.Name,
		"vertices", m.VertexCount(), "faces", m.TriangleCount())
	return nil
}

// Mesh returns the bound mesh, or nil.
func (rc *RenderContext) Mesh() *models.Mesh { return rc.mesh }

// SetTexture binds the texture used by the textured modes. nil restores the
// built-in checkerboard.
func (rc *RenderContext) SetTexture(t *Texture) {
	if t == nil {
		t = DefaultTexture()
	}
	rc.texture = t
	Logger().Debug("texture bound", "width", t.Width, "height", t.Height)
}

// Texture returns the bound texture.
func (rc *RenderContext) Texture() *Texture { return rc.texture }

// Resize reallocates the color buffer and updates the aspect ratio.
// The old buffer is kept when the size is invalid.
func (rc *RenderContext) Resize(width, height int) error {
	if width == rc.buf.Width && height == rc.buf.Height {
		return nil
	}
	buf, err := NewColorBuffer(width, height)
	if err != nil {
		return err
	}
	rc.buf = buf
	rc.raster.SetTarget(buf)
	rc.opts.Width, rc.opts.Height = width, height
	rc.camera.SetViewport(width, height)
	Logger().Debug("resized", "width", width, "height", height)
	return nil
}

// Buffer returns the color buffer holding the last frame.
func (rc *RenderContext) Buffer() *ColorBuffer { return rc.buf }

// Camera returns the camera.
func (rc *RenderContext) Camera() *Camera { return rc.camera }

// Options returns the current settings.
func (rc *RenderContext) Options() Options { return rc.opts }

// SetMode switches the render mode.
func (rc *RenderContext) SetMode(m RenderMode) { rc.opts.Mode = m }

// SetCull switches the cull mode.
func (rc *RenderContext) SetCull(c CullMode) { rc.opts.Cull = c }

// TogglePerspectiveCorrect flips perspective-correct texturing and returns
// the new setting.
func (rc *RenderContext) TogglePerspectiveCorrect() bool {
	rc.opts.PerspectiveCorrect = !rc.opts.PerspectiveCorrect
	return rc.opts.PerspectiveCorrect
}

// Phase reports the state of the triangle buffer.
func (rc *RenderContext) Phase() Phase { return rc.phase }

// Triangles returns the triangles of the frame in progress. The slice is
// only valid until the next Discard.
func (rc *RenderContext) Triangles() []Triangle { return rc.tris.Items() }

// Frame renders one frame: clear, transform, sort, rasterize, discard.
// The color buffer holds the image when it returns.
func (rc *RenderContext) Frame() {
	rc.Clear()
	rc.Transform()
	rc.Sort()
	rc.Rasterize()
	rc.Discard()
}

// Clear fills the color buffer with the background and grid and empties
// the triangle buffer.
func (rc *RenderContext) Clear() {
	rc.buf.Clear(rc.opts.Background)
	rc.buf.DrawDottedGrid(rc.opts.GridSpacing, rc.opts.GridColor)
	rc.tris.Reset()
	rc.phase = PhaseEmpty
}

// Transform projects the bound mesh into the triangle buffer and returns
// the number of triangles emitted.
func (rc *RenderContext) Transform() int {
	n := 0
	if rc.mesh != nil {
		n = TransformMesh(rc.tris, rc.mesh, rc.camera, rc.light, rc.opts.Cull, rc.buf.Width, rc.buf.Height)
	}
	rc.phase = PhasePopulated
	return n
}

// Sort orders the triangle buffer back to front.
func (rc *RenderContext) Sort() {
	SortByDepth(rc.tris.Items())
	rc.phase = PhaseSorted
}

// Rasterize draws the triangle buffer according to the render mode.
func (rc *RenderContext) Rasterize() {
	mode := rc.opts.Mode
	for i := range rc.tris.Len() {
		t := rc.tris.At(i)
		switch {
		case mode.textures():
			rc.raster.DrawTriangleTextured(t, rc.texture, rc.opts.PerspectiveCorrect)
		case mode.fills():
			rc.raster.FillTriangle(t, LightApply(t.Color, t.Intensity))
		}
		if mode.wires() {
			rc.raster.DrawTriangleWire(t, rc.opts.WireColor)
		}
		if mode.markers() {
			rc.raster.DrawVertexMarkers(t, rc.opts.VertexColor)
		}
	}
	rc.phase = PhaseConsumed
}

// Discard empties the triangle buffer, keeping its capacity.
func (rc *RenderContext) Discard() {
	rc.tris.Reset()
	rc.phase = PhaseDiscarded
}

// ClearColorBuffer fills the color buffer with c. Front ends call it after
// presenting a frame when they keep the buffer between frames.
func (rc *RenderContext) ClearColorBuffer(c uint32) {
	rc.buf.Clear(c)
}
