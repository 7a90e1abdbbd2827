package crosshair

import "math"

// Point is an integer canvas position.
type Point struct {
	X, Y int
}

// Center returns the canvas center used as rotation pivot and dot position.
func Center(width, height int) Point {
	return Point{X: floorHalf(width), Y: floorHalf(height)}
}

// Rect is an axis-aligned rectangle. W and H are kept as given, even when degenerate.
type Rect struct {
	X, Y, W, H int
}

type ShapeKind uint8

const (
	ShapeArm ShapeKind = iota
	ShapeDot
)

// Direction identifies one crosshair arm. Dots carry NoArm.
type Direction uint8

const (
	NoArm Direction = iota
	Top
	Bottom
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	case NoArm:
		return "none"
	}
	return "unknown"
}

// Shape is one primitive to paint. Arms are rotated by Rotation degrees about Pivot;
// dots are never rotated and Rect is their bounding box.
type Shape struct {
	Kind     ShapeKind
	Arm      Direction
	Rect     Rect
	Color    RGB
	Rotation float64
	Pivot    Point
}

// FPoint is a point in screen space after rotation.
type FPoint struct {
	X, Y float64
}

// Corners returns the rectangle corners clockwise from the top-left, rotated about
// the pivot. Screen space is y-down, so a positive angle turns clockwise on screen.
func (s Shape) Corners() [4]FPoint {
	r := s.Rect
	pts := [4]FPoint{
		{float64(r.X), float64(r.Y)},
		{float64(r.X + r.W), float64(r.Y)},
		{float64(r.X + r.W), float64(r.Y + r.H)},
		{float64(r.X), float64(r.Y + r.H)},
	}
	if s.Rotation == 0 {
		return pts
	}
	sin, cos := math.Sincos(s.Rotation * math.Pi / 180)
	px, py := float64(s.Pivot.X), float64(s.Pivot.Y)
	for i, p := range pts {
		x, y := p.X-px, p.Y-py
		pts[i] = FPoint{X: x*cos - y*sin + px, Y: x*sin + y*cos + py}
	}
	return pts
}

// DotCenter returns the center of a dot's bounding box.
func (s Shape) DotCenter() FPoint {
	return FPoint{
		X: float64(s.Rect.X) + float64(s.Rect.W)/2,
		Y: float64(s.Rect.Y) + float64(s.Rect.H)/2,
	}
}

// ComputeShapes lays out the crosshair for the given center, back to front: the
// visible arms in top, bottom, left, right order, then the dot. It never fails;
// degenerate sizes produce degenerate shapes.
func ComputeShapes(c Point, cfg Config) []Shape {
	shapes := make([]Shape, 0, 5)

	if cfg.CrosshairEnabled {
		t, g, ln := cfg.Thickness, cfg.Gap, cfg.Length
		half := floorHalf(t)
		arms := [...]struct {
			dir  Direction
			show bool
			rect Rect
		}{
			{Top, cfg.Shown.Top, Rect{c.X - half, c.Y - g - ln, t, ln}},
			{Bottom, cfg.Shown.Bottom, Rect{c.X - half, c.Y + g, t, ln}},
			{Left, cfg.Shown.Left, Rect{c.X - g - ln, c.Y - half, ln, t}},
			{Right, cfg.Shown.Right, Rect{c.X + g, c.Y - half, ln, t}},
		}
		for _, a := range arms {
			if !a.show {
				continue
			}
			shapes = append(shapes, Shape{
				Kind:     ShapeArm,
				Arm:      a.dir,
				Rect:     a.rect,
				Color:    cfg.CrosshairColor,
				Rotation: float64(cfg.Rotation),
				Pivot:    c,
			})
		}
	}

	if cfg.DotEnabled {
		s := cfg.DotSize
		half := floorHalf(s)
		shapes = append(shapes, Shape{
			Kind:  ShapeDot,
			Arm:   NoArm,
			Rect:  Rect{c.X - half, c.Y - half, s, s},
			Color: cfg.DotColor,
			Pivot: c,
		})
	}

	return shapes
}

// floorHalf divides by two rounding towards negative infinity. Odd sizes leave the
// extra pixel on the far side of the arm.
func floorHalf(v int) int {
	if v < 0 {
		return -((1 - v) / 2)
	}
	return v / 2
}
