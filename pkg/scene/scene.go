// Package scene drives a render context frame by frame: it animates the
// mesh rotation and turns key presses into render settings.
package scene

import (
	"fmt"

	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/models"
	"github.com/taigrr/softrender/pkg/render"
)

// DefaultTranslation places the mesh in front of the camera.
var DefaultTranslation = math3d.V3(0, 0, 5)

// Scene couples a render context, the mesh it draws and the spinner that
// animates it. Like the context it wraps, it is not safe for concurrent use.
type Scene struct {
	Context *render.RenderContext
	Mesh    *models.Mesh
	Spinner *Spinner
}

// New binds mesh to ctx, moves it to DefaultTranslation and creates a
// spinner stepped fps times per second.
func New(ctx *render.RenderContext, mesh *models.Mesh, fps int) (*Scene, error) {
	mesh.Translation = DefaultTranslation
	if err := ctx.SetMesh(mesh); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	return &Scene{
		Context: ctx,
		Mesh:    mesh,
		Spinner: NewSpinner(fps),
	}, nil
}

// Step advances the animation one frame and renders it.
func (s *Scene) Step() {
	s.Spinner.Update()
	s.Mesh.Rotation = s.Spinner.Rotation()
	s.Context.Frame()
}

// Apply executes a command. It reports true when the command asks to quit.
func (s *Scene) Apply(cmd Command) bool {
	switch cmd.Action {
	case ActionMode:
		s.Context.SetMode(cmd.Mode)
	case ActionCull:
		s.Context.SetCull(cmd.Cull)
	case ActionSpin:
		s.Spinner.Impulse(cmd.Spin)
	case ActionReset:
		s.Spinner.Reset()
		s.Mesh.Rotation = math3d.Zero3()
	case ActionPerspective:
		on := s.Context.TogglePerspectiveCorrect()
		render.Logger().Debug("perspective-correct texturing", "enabled", on)
	case ActionQuit:
		return true
	}
	return false
}
