package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

func TestTickFollowsSharedConfig(t *testing.T) {
	shared := crosshair.NewShared(crosshair.Defaults())
	o := NewOverlay(shared)

	if w, h := o.Layout(1000, 800); w != 1000 || h != 800 {
		t.Fatalf("Expected layout 1000x800, got %dx%d", w, h)
	}
	if err := o.tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(o.shapes) != 5 {
		t.Fatalf("Expected 4 arms and a dot, got %d shapes", len(o.shapes))
	}
	if p := o.shapes[0].Pivot; p != (crosshair.Point{X: 500, Y: 400}) {
		t.Errorf("Expected pivot at canvas center (500,400), got %+v", p)
	}

	// panel edits show up on the next tick
	shared.Update(func(c *crosshair.Config) {
		c.CrosshairEnabled = false
	})
	if err := o.tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(o.shapes) != 1 || o.shapes[0].Kind != crosshair.ShapeDot {
		t.Errorf("Expected only the dot after disabling the crosshair, got %+v", o.shapes)
	}
}

func TestQuitTerminatesOnNextTick(t *testing.T) {
	o := NewOverlay(crosshair.NewShared(crosshair.Defaults()))
	o.Quit()
	if err := o.tick(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

func TestRestartFlag(t *testing.T) {
	o := NewOverlay(crosshair.NewShared(crosshair.Defaults()))
	o.Restart()
	if !o.restart.Load() {
		t.Fatal("Expected restart request to be pending")
	}
	if !o.restart.Swap(false) || o.restart.Load() {
		t.Error("Expected restart request to be consumed once")
	}
}

func TestAppendQuad(t *testing.T) {
	cfg := crosshair.Defaults()
	cfg.DotEnabled = false
	cfg.Rotation = 30
	shapes := crosshair.ComputeShapes(crosshair.Point{X: 100, Y: 100}, cfg)

	var vs []ebiten.Vertex
	var is []uint16
	for _, s := range shapes {
		vs, is = appendQuad(vs, is, s.Corners(), s.Color)
	}

	if len(vs) != 16 || len(is) != 24 {
		t.Fatalf("Expected 16 vertices and 24 indices, got %d and %d", len(vs), len(is))
	}
	for i, idx := range is {
		if int(idx) >= len(vs) {
			t.Errorf("Index %d out of range: %d", i, idx)
		}
	}
	// second quad starts at vertex 4
	if is[6] != 4 || is[11] != 7 {
		t.Errorf("Expected second quad indices to start at 4, got %v", is[6:12])
	}
	corners := shapes[1].Corners()
	if vs[4].DstX != float32(corners[0].X) || vs[4].DstY != float32(corners[0].Y) {
		t.Errorf("Expected vertex 4 at %+v, got (%f,%f)", corners[0], vs[4].DstX, vs[4].DstY)
	}
	if vs[0].ColorG != 1 || vs[0].ColorR != 0 || vs[0].ColorA != 1 {
		t.Errorf("Expected opaque green vertices, got %+v", vs[0])
	}
}

func TestVertexColor(t *testing.T) {
	r, g, b, a := vertexColor(crosshair.RGB{R: 255, G: 0, B: 51})
	if r != 1 || g != 0 || b != 0.2 || a != 1 {
		t.Errorf("Expected (1,0,0.2,1), got (%f,%f,%f,%f)", r, g, b, a)
	}
}
