package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/geom"
	"github.com/brunopostle/sdnf-export/pkg/scene"
)

func fixedClock() time.Time {
	return time.Date(2013, time.February, 10, 16, 27, 18, 0, time.UTC)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExportSingleTriangle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tri.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	project := writeFile(t, dir, "tri.toml", "[[object]]\nname = \"tri\"\nmesh = \"tri.obj\"\n")

	var buf bytes.Buffer
	stats, err := NewRunner(nil).Export(context.Background(), Options{
		ProjectPath: project,
		Output:      &buf,
		Now:         fixedClock,
	})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if stats.Plates != 1 || stats.Beams != 0 {
		t.Errorf("stats = %d plates, %d beams; want 1, 0", stats.Plates, stats.Beams)
	}

	want := `Packet 00
""
"Eng Firm Id"
"Client Id"
"Structure Id"
"10/02/13" "16:27:18"
1 "_Issue_Code_"
"_Design_Code_"
0
Packet 10
"meters" 0
Packet 20
"meters" "meters" 1
200001 0 0 0 "plate"
"" "S355" 0.008000 3
0.000000 0.000000 0.000000
1.000000 0.000000 0.000000
0.000000 1.000000 0.000000
`
	if got := buf.String(); got != want {
		t.Errorf("Export() output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportMixedScene(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plate.obj", "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	writeFile(t, dir, "column.obj", "v 0 0 0\nv 0 0 3\nl 1 2\n")
	project := writeFile(t, dir, "frame.toml", `
[title]
structure = "Test Frame"

[[object]]
name = "deck"
mesh = "plate.obj"

[[object.solidify]]
thickness = 0.012
offset = 1.0

[[object]]
name = "column"
mesh = "column.obj"

[[object]]
name = "ghost"
mesh = "missing.obj"
`)

	var buf bytes.Buffer
	stats, err := NewRunner(nil).Export(context.Background(), Options{
		ProjectPath: project,
		Output:      &buf,
		Now:         fixedClock,
	})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if stats.Objects != 3 {
		t.Errorf("Objects = %d, want 3", stats.Objects)
	}
	if stats.Plates != 1 || stats.Beams != 1 {
		t.Errorf("stats = %d plates, %d beams; want 1, 1", stats.Plates, stats.Beams)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}

	out := buf.String()
	if !strings.Contains(out, "\"Test Frame\"\n") {
		t.Error("title packet should carry the project structure id")
	}
	// Solidify offset 1.0 maps to connect point -1.
	if !strings.Contains(out, "200001 -1 0 0 \"plate\"\n") {
		t.Error("plate member should use the derived connect point")
	}
	if !strings.Contains(out, "\"\" \"S355\" 0.012000 4\n") {
		t.Error("plate member should carry the solidify thickness and vertex count")
	}
	// A vertical column edge gets the X-axis orientation vector.
	if !strings.Contains(out, "100001 5 0 0 \"beam\" \"\" 0\n") {
		t.Error("output missing the beam member header")
	}
	if !strings.Contains(out, "1.000000 0.000000 0.000000 0.000000 0.000000 0.000000 0.000000 0.000000 3.000000 0.000000 0.000000\n") {
		t.Error("vertical beam should use the X-axis orientation vector")
	}
}

func TestExportScaleOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tri.obj", "v 1 2 3\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	project := writeFile(t, dir, "tri.toml", "[[object]]\nmesh = \"tri.obj\"\n")

	var buf bytes.Buffer
	_, err := NewRunner(nil).Export(context.Background(), Options{
		ProjectPath: project,
		Output:      &buf,
		Scale:       2.0,
		Now:         fixedClock,
	})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !strings.Contains(buf.String(), "2.000000 4.000000 6.000000\n") {
		t.Error("scale override should double every coordinate")
	}
}

func TestExportWritesDerivedPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tri.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	project := writeFile(t, dir, "tri.toml", "[[object]]\nmesh = \"tri.obj\"\n")

	_, err := NewRunner(nil).Export(context.Background(), Options{
		ProjectPath: project,
		Now:         fixedClock,
	})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tri.sdnf"))
	if err != nil {
		t.Fatalf("derived output missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "Packet 00\n") {
		t.Error("derived output should start with the title packet")
	}
}

func TestExportMalformedGeometryFails(t *testing.T) {
	s := &scene.Scene{
		Objects: []*scene.Object{{
			Name:   "broken",
			Matrix: geom.Identity(),
			Mesh: &scene.TriMesh{
				Verts:    []geom.Vector3{geom.V3(0, 0, 0), geom.V3(1, 0, 0)},
				FaceList: [][]int{{0, 1}},
			},
		}},
	}

	var buf bytes.Buffer
	_, err := NewRunner(nil).Export(context.Background(), Options{
		Scene:  s,
		Output: &buf,
		Now:    fixedClock,
	})
	if err == nil {
		t.Fatal("Export() should fail on a malformed face")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFace) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFace)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the object: %v", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty options: code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}

	opts = Options{ProjectPath: "job/frame.toml"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.OutputPath != "job/frame.sdnf" {
		t.Errorf("OutputPath = %q, want derived %q", opts.OutputPath, "job/frame.sdnf")
	}

	opts = Options{Scene: &scene.Scene{}}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Error("in-memory scene without destination should be rejected")
	}
}

func TestCollectObjectOrder(t *testing.T) {
	tri := func(x float64) *scene.TriMesh {
		return &scene.TriMesh{
			Verts:    []geom.Vector3{geom.V3(x, 0, 0), geom.V3(x+1, 0, 0), geom.V3(x, 1, 0)},
			FaceList: [][]int{{0, 1, 2}},
		}
	}
	s := &scene.Scene{Objects: []*scene.Object{
		{Name: "first", Matrix: geom.Identity(), Mesh: tri(0)},
		{Name: "second", Matrix: geom.Identity(), Mesh: tri(10)},
	}}

	plates, beams, skipped, err := Collect(s, 0, nil)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(beams) != 0 || skipped != 0 {
		t.Errorf("got %d beams, %d skipped; want 0, 0", len(beams), skipped)
	}
	if len(plates) != 2 {
		t.Fatalf("plate count = %d, want 2", len(plates))
	}
	if plates[0].Name != "first" || plates[1].Name != "second" {
		t.Errorf("plate order = %q, %q; want scene order", plates[0].Name, plates[1].Name)
	}
}
