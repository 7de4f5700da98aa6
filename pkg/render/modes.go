package render

import (
	"fmt"
	"strings"
)

// RenderMode selects what is drawn for each triangle.
type RenderMode int

const (
	ModeWireVertex    RenderMode = iota // wireframe plus vertex markers
	ModeWire                            // wireframe only
	ModeFilled                          // flat shaded
	ModeFilledWire                      // flat shaded with wireframe
	ModeTextured                        // textured
	ModeTexturedWire                    // textured with wireframe
)

var modeNames = [...]string{
	ModeWireVertex:   "wire-vertex",
	ModeWire:         "wire",
	ModeFilled:       "filled",
	ModeFilledWire:   "filled-wire",
	ModeTextured:     "textured",
	ModeTexturedWire: "textured-wire",
}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseRenderMode accepts a mode name or its key number "1".."6".
func ParseRenderMode(s string) (RenderMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if s == name || s == fmt.Sprint(i+1) {
			return RenderMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

func (m RenderMode) fills() bool {
	return m == ModeFilled || m == ModeFilledWire
}

func (m RenderMode) textures() bool {
	return m == ModeTextured || m == ModeTexturedWire
}

func (m RenderMode) wires() bool {
	return m != ModeFilled && m != ModeTextured
}

func (m RenderMode) markers() bool {
	return m == ModeWireVertex
}

// CullMode selects which faces are discarded before projection.
type CullMode int

const (
	CullBackface CullMode = iota // drop faces pointing away from the camera
	CullNone                     // keep every face
)

func (c CullMode) String() string {
	switch c {
	case CullBackface:
		return "backface"
	case CullNone:
		return "none"
	default:
		return fmt.Sprintf("CullMode(%d)", int(c))
	}
}

// ParseCullMode accepts "backface" or "none".
func ParseCullMode(s string) (CullMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backface", "back":
		return CullBackface, nil
	case "none", "off":
		return CullNone, nil
	default:
		return 0, fmt.Errorf("unknown cull mode %q", s)
	}
}
