package panel

import (
	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

type controlKind uint8

const (
	kindCheckbox controlKind = iota
	kindColor
	kindSlider
	kindButton
)

// control is one focusable row of the panel.
type control struct {
	kind  controlKind
	label string
	group int

	flag   func(*crosshair.Config) *bool
	color  func(*crosshair.Config) *crosshair.RGB
	slider *slider
	action func(*Panel)
}

// slider is a bounded integer setting. Even sliders step by two and raise odd
// values, so thickness and dot size stay symmetric around the center.
type slider struct {
	min, max int
	even     bool
	field    func(*crosshair.Config) *int
}

func (s *slider) step() int {
	if s.even {
		return 2
	}
	return 1
}

// coerce clamps v to the slider range, then applies even rounding.
func (s *slider) coerce(v int) int {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if s.even {
		v = crosshair.EvenUp(v)
	}
	return v
}

func (s *slider) set(cfg *crosshair.Config, v int) {
	*s.field(cfg) = s.coerce(v)
}

func (s *slider) adjust(cfg *crosshair.Config, dir int) {
	s.set(cfg, *s.field(cfg)+dir*s.step())
}

// fraction is the slider position in [0,1] for drawing.
func (s *slider) fraction(cfg *crosshair.Config) float64 {
	if s.max == s.min {
		return 0
	}
	f := float64(*s.field(cfg)-s.min) / float64(s.max-s.min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func defaultControls() []control {
	return []control{
		{kind: kindCheckbox, label: "Show crosshair", group: 0, flag: func(c *crosshair.Config) *bool { return &c.CrosshairEnabled }},
		{kind: kindCheckbox, label: "Show dot", group: 0, flag: func(c *crosshair.Config) *bool { return &c.DotEnabled }},

		{kind: kindColor, label: "Change crosshair color", group: 1, color: func(c *crosshair.Config) *crosshair.RGB { return &c.CrosshairColor }},
		{kind: kindColor, label: "Change dot color", group: 1, color: func(c *crosshair.Config) *crosshair.RGB { return &c.DotColor }},

		{kind: kindSlider, label: "Dot Size", group: 2, slider: &slider{
			min: config.DotSizeMin, max: config.DotSizeMax, even: true,
			field: func(c *crosshair.Config) *int { return &c.DotSize },
		}},
		{kind: kindSlider, label: "Crosshair Thickness", group: 2, slider: &slider{
			min: config.ThicknessMin, max: config.ThicknessMax, even: true,
			field: func(c *crosshair.Config) *int { return &c.Thickness },
		}},
		{kind: kindSlider, label: "Crosshair Length", group: 2, slider: &slider{
			min: config.LengthMin, max: config.LengthMax,
			field: func(c *crosshair.Config) *int { return &c.Length },
		}},
		{kind: kindSlider, label: "Crosshair Gap", group: 2, slider: &slider{
			min: config.GapMin, max: config.GapMax,
			field: func(c *crosshair.Config) *int { return &c.Gap },
		}},
		{kind: kindSlider, label: "Crosshair Rotation", group: 2, slider: &slider{
			min: config.RotationMin, max: config.RotationMax,
			field: func(c *crosshair.Config) *int { return &c.Rotation },
		}},

		{kind: kindCheckbox, label: "Top arm", group: 3, flag: func(c *crosshair.Config) *bool { return &c.Shown.Top }},
		{kind: kindCheckbox, label: "Bottom arm", group: 3, flag: func(c *crosshair.Config) *bool { return &c.Shown.Bottom }},
		{kind: kindCheckbox, label: "Left arm", group: 3, flag: func(c *crosshair.Config) *bool { return &c.Shown.Left }},
		{kind: kindCheckbox, label: "Right arm", group: 3, flag: func(c *crosshair.Config) *bool { return &c.Shown.Right }},

		{kind: kindButton, label: "Save Config", group: 4, action: (*Panel).save},
		{kind: kindButton, label: "Load Config", group: 4, action: (*Panel).load},
		{kind: kindButton, label: "Reset", group: 4, action: (*Panel).reset},
		{kind: kindButton, label: "Restart Overlay", group: 4, action: (*Panel).restartOverlay},
		{kind: kindButton, label: "Exit", group: 4, action: (*Panel).exit},
	}
}
