// softrender - CPU software 3D renderer in the terminal
// Spins a mesh (the built-in cube, or an OBJ/glTF file) and draws it with
// half-block characters, two pixels per cell.
//
// Controls:
//
//	1 - Wireframe with vertices
//	2 - Wireframe
//	3 - Filled
//	4 - Filled with wireframe
//	5 - Textured
//	6 - Textured with wireframe
//	C - Backface culling on
//	D - Backface culling off
//	Arrows/W/S/A - Spin
//	R - Reset rotation
//	P - Toggle perspective-correct texturing
//	Esc - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/softrender/internal/cli"
	"github.com/taigrr/softrender/pkg/render"
	"github.com/taigrr/softrender/pkg/scene"
)

var (
	common   cli.Flags
	headless = flag.Bool("headless", false, "Render without a terminal and save the last frame as PNG")
	frames   = flag.Int("frames", 1, "Frames to render in headless mode")
	outPath  = flag.String("out", "frame.png", "Output PNG path in headless mode")
	width    = flag.Int("width", 800, "Image width in headless mode")
	height   = flag.Int("height", 600, "Image height in headless mode")
)

func main() {
	common.Register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "softrender - CPU software 3D renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: softrender [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  1-6         - Render mode\n")
		fmt.Fprintf(os.Stderr, "  C/D         - Backface culling on/off\n")
		fmt.Fprintf(os.Stderr, "  Arrows/WSA  - Spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  P           - Perspective-correct texturing\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()
	common.SetupLogging()

	run := runTerminal
	if *headless {
		run = runHeadless
	}
	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(modelPath string) error {
	s, err := common.NewScene(modelPath, *width, *height)
	if err != nil {
		return err
	}
	for range max(*frames, 1) {
		s.Step()
	}
	if err := s.Context.Buffer().SavePNG(*outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d, %d frames)\n", *outPath, *width, *height, max(*frames, 1))
	return nil
}

// input is an event handed from the terminal reader to the frame loop.
type input struct {
	cmd    scene.Command
	resize bool
	w, h   int
}

func runTerminal(modelPath string) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	s, err := common.NewScene(modelPath, cols, rows*2)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Only the frame loop touches the scene; the reader forwards events.
	inputs := make(chan input, 32)
	go forwardEvents(ctx, term.Events(), inputs)

	targetDuration := time.Second / time.Duration(max(common.FPS, 1))
	for {
		now := time.Now()

	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case in := <-inputs:
				if in.resize {
					if err := resize(term, s.Context, in.w, in.h); err != nil {
						return err
					}
					continue
				}
				if s.Apply(in.cmd) {
					return nil
				}
			default:
				break drain
			}
		}

		s.Step()
		s.Context.Buffer().Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func resize(term *uv.Terminal, rc *render.RenderContext, cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	term.Erase()
	term.Resize(cols, rows)
	return rc.Resize(cols, rows*2)
}

// lookupKey returns the command bound to a key press.
func lookupKey(ev uv.KeyPressEvent) (scene.Command, bool) {
	for _, b := range scene.Bindings() {
		if ev.MatchString(b.Keys...) {
			return b.Command, true
		}
	}
	return scene.Command{}, false
}

// forwardEvents translates terminal events into inputs until events closes
// or ctx is done.
func forwardEvents(ctx context.Context, events <-chan uv.Event, inputs chan<- input) {
	for ev := range events {
		var in input
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			in = input{resize: true, w: ev.Width, h: ev.Height}
		case uv.KeyPressEvent:
			cmd, ok := lookupKey(ev)
			if !ok {
				continue
			}
			in = input{cmd: cmd}
		default:
			continue
		}

		select {
		case inputs <- in:
		case <-ctx.Done():
			return
		}
	}
}
