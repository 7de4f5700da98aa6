// softrender-window - CPU software 3D renderer in a desktop window
// Same pipeline and controls as softrender; the color buffer is blitted to
// an ebiten window instead of the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/taigrr/softrender/internal/cli"
	"github.com/taigrr/softrender/pkg/scene"
)

var (
	common cli.Flags
	width  = flag.Int("width", 800, "Window width in pixels")
	height = flag.Int("height", 600, "Window height in pixels")
)

// keyNames maps window keys to the names used by the key bindings.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyDigit1:     "1",
	ebiten.KeyDigit2:     "2",
	ebiten.KeyDigit3:     "3",
	ebiten.KeyDigit4:     "4",
	ebiten.KeyDigit5:     "5",
	ebiten.KeyDigit6:     "6",
	ebiten.KeyC:          "c",
	ebiten.KeyD:          "d",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyR:          "r",
	ebiten.KeyP:          "p",
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeyEscape:     "escape",
}

func main() {
	common.Register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "softrender-window - CPU software 3D renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: softrender-window [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	common.SetupLogging()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string) error {
	s, err := common.NewScene(modelPath, *width, *height)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("softrender")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(max(common.FPS, 1))

	err = ebiten.RunGame(&game{scene: s})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	scene   *scene.Scene
	img     *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	for key, name := range keyNames {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		cmd, ok := scene.Lookup(name)
		if ok && g.scene.Apply(cmd) {
			return ebiten.Termination
		}
	}
	g.scene.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	buf := g.scene.Context.Buffer()
	if g.img == nil || g.img.Bounds().Dx() != buf.Width || g.img.Bounds().Dy() != buf.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(buf.Width, buf.Height)
	}

	g.scratch = buf.RGBABytes(g.scratch)
	g.img.WritePixels(g.scratch)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		// Keep the old buffer on failure; the size was already checked positive.
		_ = g.scene.Context.Resize(outsideWidth, outsideHeight)
	}
	buf := g.scene.Context.Buffer()
	return buf.Width, buf.Height
}
