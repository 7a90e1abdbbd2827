package config

import "time"

const (
	Version     = "v2"
	WindowTitle = "Crosshair Overlay"
	ProjectURL  = "https://github.com/iburimskiy/crosshair-overlay"

	// Overlay redraw cadence, ticks per second (50ms)
	TickRate = 20

	ConfigFileName = "config.json"
	LogFileName    = "crosshair.log"

	// HideKey toggles the settings panel
	HideKey = '\\'

	// Slider bounds
	DotSizeMin   = 2
	DotSizeMax   = 20
	ThicknessMin = 2
	ThicknessMax = 20
	LengthMin    = 1
	LengthMax    = 50
	GapMin       = 1
	GapMax       = 20
	RotationMin  = 0
	RotationMax  = 90

	// Audio cues
	CueSampleRate = 44100
	CueDuration   = 40 * time.Millisecond
)
