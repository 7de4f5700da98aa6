package cli

import (
	"errors"
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/render"
)

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return &f
}

func TestOptionsDefaults(t *testing.T) {
	opts, err := parseFlags(t).Options(320, 200)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}

	want := render.DefaultOptions()
	want.Width, want.Height = 320, 200
	if math.Abs(opts.FOV-want.FOV) > 1e-12 {
		t.Errorf("FOV = %v, want %v", opts.FOV, want.FOV)
	}
	opts.FOV = want.FOV
	if opts != want {
		t.Errorf("options = %+v, want %+v", opts, want)
	}
}

func TestOptionsFromFlags(t *testing.T) {
	opts, err := parseFlags(t,
		"-mode", "5", "-cull", "none", "-bg", "#102030",
		"-fov", "90", "-light", "0,-1,0").Options(10, 10)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Mode != render.ModeTextured || opts.Cull != render.CullNone {
		t.Errorf("mode/cull = %v/%v", opts.Mode, opts.Cull)
	}
	if opts.Background != 0xFF102030 {
		t.Errorf("background = %08X", opts.Background)
	}
	if math.Abs(opts.FOV-math.Pi/2) > 1e-12 {
		t.Errorf("FOV = %v", opts.FOV)
	}
	if opts.Light != math3d.V3(0, -1, 0) {
		t.Errorf("light = %v", opts.Light)
	}
}

func TestOptionsErrors(t *testing.T) {
	tests := [][]string{
		{"-mode", "shiny"},
		{"-cull", "front"},
		{"-bg", "blue"},
		{"-fov", "0"},
		{"-fov", "200"},
		{"-light", "up"},
		{"-light", "0,0,0"},
	}
	for _, args := range tests {
		if _, err := parseFlags(t, args...).Options(10, 10); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestLoadMeshDefaultCube(t *testing.T) {
	mesh, tex, err := LoadMesh("")
	if err != nil {
		t.Fatal(err)
	}
	if mesh.TriangleCount() != 12 || tex != nil {
		t.Errorf("got %d faces, texture %v", mesh.TriangleCount(), tex)
	}
}

func TestLoadMeshOBJNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	src := "v 0 0 10\nv 8 0 10\nv 0 4 10\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, _, err := LoadMesh(path)
	if err != nil {
		t.Fatalf("LoadMesh: %v", err)
	}
	if math.Abs(mesh.Size().X-2) > 1e-9 || mesh.Center().Len() > 1e-9 {
		t.Errorf("size %v center %v", mesh.Size(), mesh.Center())
	}
}

func TestNewScene(t *testing.T) {
	s, err := parseFlags(t, "-fps", "30").NewScene("", 40, 30)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	if s.Mesh.TriangleCount() != 12 {
		t.Errorf("faces = %d", s.Mesh.TriangleCount())
	}
	s.Step()
	if s.Context.Buffer().Width != 40 {
		t.Errorf("width = %d", s.Context.Buffer().Width)
	}
}

func TestNewSceneErrors(t *testing.T) {
	if _, err := parseFlags(t).NewScene("", 0, 10); !errors.Is(err, render.ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
	if _, err := parseFlags(t, "-texture", "/nonexistent.png").NewScene("", 10, 10); err == nil {
		t.Error("missing texture should fail")
	}
	if _, err := parseFlags(t).NewScene("/nonexistent.obj", 10, 10); err == nil {
		t.Error("missing model should fail")
	}
}
