// Package crosshair holds the overlay configuration and the geometry that turns it
// into paintable shapes.
package crosshair

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex decodes "#rrggbb".
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("color: %q is not #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex encodes the colour as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Blend mixes c towards o by t in [0,1], in RGB space.
func (c RGB) Blend(o RGB, t float64) RGB {
	r, g, b := c.colorful().BlendRgb(o.colorful(), t).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Shown holds the per-arm visibility flags.
type Shown struct {
	Top, Bottom, Left, Right bool
}

// Count returns how many arms are visible.
func (s Shown) Count() int {
	n := 0
	for _, v := range [...]bool{s.Top, s.Bottom, s.Left, s.Right} {
		if v {
			n++
		}
	}
	return n
}

// Config is the full set of overlay parameters.
type Config struct {
	CrosshairEnabled bool
	DotEnabled       bool

	Thickness int // even, >= 2
	Length    int
	Gap       int
	Rotation  int // degrees, 0..90
	DotSize   int // even, >= 2

	Shown Shown

	CrosshairColor RGB
	DotColor       RGB

	// RainbowShift is reserved. Nothing reads it and it is not persisted.
	RainbowShift float64
}

// Defaults returns the configuration used on first start and by Reset.
func Defaults() Config {
	return Config{
		CrosshairEnabled: true,
		DotEnabled:       true,
		DotSize:          2,
		Thickness:        2,
		Length:           8,
		Gap:              3,
		Rotation:         0,
		Shown:            Shown{Top: true, Bottom: true, Left: true, Right: true},
		CrosshairColor:   RGB{R: 0, G: 255, B: 0},
		DotColor:         RGB{R: 255, G: 255, B: 255},
	}
}

// EvenUp raises odd values by one. Thickness and dot size go through it on input.
func EvenUp(v int) int {
	if v%2 != 0 {
		return v + 1
	}
	return v
}
