package scene

import (
	"slices"

	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/render"
)

// SpinImpulse is the angular velocity one arrow key press adds, in radians
// per frame.
const SpinImpulse = 0.05

// Action is what a command does.
type Action int

const (
	ActionNone        Action = iota
	ActionMode               // switch render mode
	ActionCull               // switch cull mode
	ActionSpin               // add spin impulse
	ActionReset              // reset rotation
	ActionPerspective        // toggle perspective-correct texturing
	ActionQuit
)

// Command is an input event translated into a scene change.
type Command struct {
	Action Action
	Mode   render.RenderMode
	Cull   render.CullMode
	Spin   math3d.Vec3
}

// Binding maps key names to a command. Key names follow the terminal
// convention: "1", "c", "escape", "up".
type Binding struct {
	Keys    []string
	Command Command
}

var bindings = []Binding{
	{[]string{"1"}, Command{Action: ActionMode, Mode: render.ModeWireVertex}},
	{[]string{"2"}, Command{Action: ActionMode, Mode: render.ModeWire}},
	{[]string{"3"}, Command{Action: ActionMode, Mode: render.ModeFilled}},
	{[]string{"4"}, Command{Action: ActionMode, Mode: render.ModeFilledWire}},
	{[]string{"5"}, Command{Action: ActionMode, Mode: render.ModeTextured}},
	{[]string{"6"}, Command{Action: ActionMode, Mode: render.ModeTexturedWire}},
	{[]string{"c"}, Command{Action: ActionCull, Cull: render.CullBackface}},
	{[]string{"d"}, Command{Action: ActionCull, Cull: render.CullNone}},
	{[]string{"up", "w"}, Command{Action: ActionSpin, Spin: math3d.V3(-SpinImpulse, 0, 0)}},
	{[]string{"down", "s"}, Command{Action: ActionSpin, Spin: math3d.V3(SpinImpulse, 0, 0)}},
	{[]string{"left", "a"}, Command{Action: ActionSpin, Spin: math3d.V3(0, -SpinImpulse, 0)}},
	{[]string{"right"}, Command{Action: ActionSpin, Spin: math3d.V3(0, SpinImpulse, 0)}},
	{[]string{"r"}, Command{Action: ActionReset}},
	{[]string{"p"}, Command{Action: ActionPerspective}},
	{[]string{"escape", "ctrl+c"}, Command{Action: ActionQuit}},
}

// Bindings returns the key table. "d" selects no culling, so spinning right
// is on the arrow key only.
func Bindings() []Binding {
	return bindings
}

// Lookup returns the command bound to key.
func Lookup(key string) (Command, bool) {
	for _, b := range bindings {
		if slices.Contains(b.Keys, key) {
			return b.Command, true
		}
	}
	return Command{}, false
}
