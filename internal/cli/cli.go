// Package cli holds the flags and startup shared by the front ends.
package cli

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/models"
	"github.com/taigrr/softrender/pkg/render"
	"github.com/taigrr/softrender/pkg/scene"
)

// maxTextureSize bounds loaded textures; larger images are downscaled.
const maxTextureSize = 512

// Flags are the settings common to every front end.
type Flags struct {
	Texture string
	FPS     int
	BG      string
	Mode    string
	Cull    string
	FOV     float64 // degrees
	Light   string
	Verbose bool
}

// Register adds the common flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Texture, "texture", "", "Path to texture image (PNG/JPG/BMP/TIFF/WebP)")
	fs.IntVar(&f.FPS, "fps", 60, "Target FPS")
	fs.StringVar(&f.BG, "bg", "#000000", "Background color (#RRGGBB or 0xAARRGGBB)")
	fs.StringVar(&f.Mode, "mode", "filled-wire", "Render mode: wire-vertex, wire, filled, filled-wire, textured, textured-wire (or 1-6)")
	fs.StringVar(&f.Cull, "cull", "backface", "Cull mode: backface or none")
	fs.Float64Var(&f.FOV, "fov", 60, "Vertical field of view in degrees")
	fs.StringVar(&f.Light, "light", "0,0,1", "Light direction (X,Y,Z)")
	fs.BoolVar(&f.Verbose, "v", false, "Log lifecycle events to stderr")
}

// Options resolves the flags into render options of the given size.
func (f *Flags) Options(width, height int) (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Width, opts.Height = width, height

	var err error
	if opts.Background, err = render.ParseColor(f.BG); err != nil {
		return opts, err
	}
	if opts.Mode, err = render.ParseRenderMode(f.Mode); err != nil {
		return opts, err
	}
	if opts.Cull, err = render.ParseCullMode(f.Cull); err != nil {
		return opts, err
	}
	if f.FOV <= 0 || f.FOV >= 180 {
		return opts, fmt.Errorf("fov %v out of range (0, 180)", f.FOV)
	}
	opts.FOV = f.FOV * math.Pi / 180

	var x, y, z float64
	if _, err := fmt.Sscanf(f.Light, "%g,%g,%g", &x, &y, &z); err != nil {
		return opts, fmt.Errorf("parse light %q: %w", f.Light, err)
	}
	opts.Light = math3d.V3(x, y, z)
	if opts.Light.Len() == 0 {
		return opts, fmt.Errorf("light direction must not be zero")
	}
	return opts, nil
}

// SetupLogging routes renderer logs to stderr when verbose is set.
func (f *Flags) SetupLogging() {
	if !f.Verbose {
		return
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// LoadMesh returns the built-in cube for an empty path, or the mesh in the
// file scaled to fit a 2x2x2 box. The texture is non-nil only when the
// file embeds one.
func LoadMesh(path string) (*models.Mesh, *render.Texture, error) {
	if path == "" {
		return models.NewCube(), nil, nil
	}

	mesh, img, err := models.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load model: %w", err)
	}
	mesh.Normalize(2)

	var tex *render.Texture
	if img != nil {
		tex = render.TextureFromImage(render.FitImage(img, maxTextureSize))
	}
	return mesh, tex, nil
}

// NewScene builds the render context and scene for a front end.
// An explicit -texture wins over a texture embedded in the model.
func (f *Flags) NewScene(modelPath string, width, height int) (*scene.Scene, error) {
	opts, err := f.Options(width, height)
	if err != nil {
		return nil, err
	}

	rc, err := render.NewRenderContext(opts)
	if err != nil {
		return nil, err
	}

	mesh, tex, err := LoadMesh(modelPath)
	if err != nil {
		return nil, err
	}
	if f.Texture != "" {
		if tex, err = render.LoadTexture(f.Texture, maxTextureSize); err != nil {
			return nil, err
		}
	}
	if tex != nil {
		rc.SetTexture(tex)
	}

	return scene.New(rc, mesh, f.FPS)
}
