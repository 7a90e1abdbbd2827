package store

import "github.com/iburimskiy/crosshair-overlay/internal/crosshair"

// On-disk layout. Pointers tell a missing key apart from a zero value.
type fileConfig struct {
	Crosshair *crosshairSection `json:"crosshair"`
	Dot       *dotSection       `json:"dot"`
}

type crosshairSection struct {
	Enabled   *bool      `json:"enabled"`
	Color     *string    `json:"color"`
	Thickness *int       `json:"thickness"`
	Length    *int       `json:"length"`
	Gap       *int       `json:"gap"`
	Rotation  *int       `json:"rotation"`
	ShownBits *shownBits `json:"shown_bits"`
}

type shownBits struct {
	Top    *bool `json:"top"`
	Bottom *bool `json:"bottom"`
	Left   *bool `json:"left"`
	Right  *bool `json:"right"`
}

type dotSection struct {
	Enabled *bool   `json:"enabled"`
	Color   *string `json:"color"`
	Size    *int    `json:"size"`
}

func toFile(cfg crosshair.Config) fileConfig {
	crossColor := cfg.CrosshairColor.Hex()
	dotColor := cfg.DotColor.Hex()
	return fileConfig{
		Crosshair: &crosshairSection{
			Enabled:   &cfg.CrosshairEnabled,
			Color:     &crossColor,
			Thickness: &cfg.Thickness,
			Length:    &cfg.Length,
			Gap:       &cfg.Gap,
			Rotation:  &cfg.Rotation,
			ShownBits: &shownBits{
				Top:    &cfg.Shown.Top,
				Bottom: &cfg.Shown.Bottom,
				Left:   &cfg.Shown.Left,
				Right:  &cfg.Shown.Right,
			},
		},
		Dot: &dotSection{
			Enabled: &cfg.DotEnabled,
			Color:   &dotColor,
			Size:    &cfg.DotSize,
		},
	}
}

type boolField struct {
	name string
	src  *bool
	dst  *bool
}

type intField struct {
	name string
	src  *int
	dst  *int
}

type colorField struct {
	name string
	src  *string
	dst  *crosshair.RGB
}

// apply copies every field onto base. It stops at the first missing or invalid
// field and returns its dotted name.
func (f fileConfig) apply(base crosshair.Config) (crosshair.Config, string, error) {
	ch, dot := f.Crosshair, f.Dot
	switch {
	case ch == nil:
		return base, "crosshair", errMissing
	case dot == nil:
		return base, "dot", errMissing
	case ch.ShownBits == nil:
		return base, "crosshair.shown_bits", errMissing
	}
	sb := ch.ShownBits

	cfg := base
	bools := []boolField{
		{"crosshair.enabled", ch.Enabled, &cfg.CrosshairEnabled},
		{"crosshair.shown_bits.top", sb.Top, &cfg.Shown.Top},
		{"crosshair.shown_bits.bottom", sb.Bottom, &cfg.Shown.Bottom},
		{"crosshair.shown_bits.left", sb.Left, &cfg.Shown.Left},
		{"crosshair.shown_bits.right", sb.Right, &cfg.Shown.Right},
		{"dot.enabled", dot.Enabled, &cfg.DotEnabled},
	}
	ints := []intField{
		{"crosshair.thickness", ch.Thickness, &cfg.Thickness},
		{"crosshair.length", ch.Length, &cfg.Length},
		{"crosshair.gap", ch.Gap, &cfg.Gap},
		{"crosshair.rotation", ch.Rotation, &cfg.Rotation},
		{"dot.size", dot.Size, &cfg.DotSize},
	}
	colors := []colorField{
		{"crosshair.color", ch.Color, &cfg.CrosshairColor},
		{"dot.color", dot.Color, &cfg.DotColor},
	}

	for _, b := range bools {
		if b.src == nil {
			return base, b.name, errMissing
		}
		*b.dst = *b.src
	}
	for _, n := range ints {
		if n.src == nil {
			return base, n.name, errMissing
		}
		*n.dst = *n.src
	}
	for _, c := range colors {
		if c.src == nil {
			return base, c.name, errMissing
		}
		rgb, err := crosshair.ParseHex(*c.src)
		if err != nil {
			return base, c.name, err
		}
		*c.dst = rgb
	}

	return cfg, "", nil
}
