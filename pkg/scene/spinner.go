package scene

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/softrender/pkg/math3d"
)

// Spring tuning for impulse decay: moderate speed, critically damped.
const (
	springFrequency = 4.0
	springDamping   = 1.0
)

// DefaultAutoSpin is the rotation added every frame: 0.02 rad around Y.
var DefaultAutoSpin = math3d.V3(0, 0.02, 0)

// Axis is one rotation axis: an angle plus an angular velocity that a
// spring pulls back to zero.
type Axis struct {
	Position float64
	Velocity float64

	spring harmonica.Spring
	accel  float64 // spring's own velocity while it animates Velocity
}

func newAxis(fps int) Axis {
	return Axis{spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)}
}

// update advances the angle by base plus the current velocity, then lets the
// spring decay the velocity.
func (a *Axis) update(base float64) {
	a.Position += base + a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Spinner animates a mesh rotation: a constant per-frame spin plus
// spring-damped impulses from user input.
type Spinner struct {
	X, Y, Z  Axis
	AutoSpin math3d.Vec3

	fps int
}

// NewSpinner creates a spinner stepped fps times per second.
func NewSpinner(fps int) *Spinner {
	fps = max(fps, 1)
	return &Spinner{
		X:        newAxis(fps),
		Y:        newAxis(fps),
		Z:        newAxis(fps),
		AutoSpin: DefaultAutoSpin,
		fps:      fps,
	}
}

// Update advances one frame.
func (s *Spinner) Update() {
	s.X.update(s.AutoSpin.X)
	s.Y.update(s.AutoSpin.Y)
	s.Z.update(s.AutoSpin.Z)
}

// Impulse adds angular velocity (radians per frame) to each axis.
func (s *Spinner) Impulse(v math3d.Vec3) {
	s.X.Velocity += v.X
	s.Y.Velocity += v.Y
	s.Z.Velocity += v.Z
}

// Reset zeroes angles and velocities. AutoSpin is kept.
func (s *Spinner) Reset() {
	s.X = newAxis(s.fps)
	s.Y = newAxis(s.fps)
	s.Z = newAxis(s.fps)
}

// Rotation returns the current Euler angles.
func (s *Spinner) Rotation() math3d.Vec3 {
	return math3d.V3(s.X.Position, s.Y.Position, s.Z.Position)
}

// Velocity returns the current angular velocity per axis.
func (s *Spinner) Velocity() math3d.Vec3 {
	return math3d.V3(s.X.Velocity, s.Y.Velocity, s.Z.Velocity)
}
