package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// newPixel returns a 1x1 white source image for solid-colour triangles.
func newPixel() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// paint draws shapes back to front. Arms are batched; the batch is flushed before
// each dot so a dot always lands on top.
func (o *Overlay) paint(screen *ebiten.Image, shapes []crosshair.Shape) {
	o.vertices, o.indices = o.vertices[:0], o.indices[:0]
	for _, s := range shapes {
		switch s.Kind {
		case crosshair.ShapeArm:
			o.vertices, o.indices = appendQuad(o.vertices, o.indices, s.Corners(), s.Color)
		case crosshair.ShapeDot:
			o.flush(screen)
			drawDot(screen, s)
		}
	}
	o.flush(screen)
}

func (o *Overlay) flush(screen *ebiten.Image) {
	if len(o.indices) == 0 {
		return
	}
	screen.DrawTriangles(o.vertices, o.indices, o.pixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	o.vertices, o.indices = o.vertices[:0], o.indices[:0]
}

// appendQuad adds a filled quadrilateral as two triangles.
func appendQuad(vs []ebiten.Vertex, is []uint16, corners [4]crosshair.FPoint, c crosshair.RGB) ([]ebiten.Vertex, []uint16) {
	r, g, b, a := vertexColor(c)
	base := uint16(len(vs))
	for _, p := range corners {
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	is = append(is, base, base+1, base+2, base, base+2, base+3)
	return vs, is
}

func drawDot(screen *ebiten.Image, s crosshair.Shape) {
	if s.Rect.W <= 0 {
		return
	}
	c := s.DotCenter()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(s.Rect.W)/2, s.Color.RGBA(), true)
}
