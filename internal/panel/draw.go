package panel

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

const (
	sliderWidth = 20
	labelWidth  = 22

	barFull  = '█'
	barEmpty = '░'
)

var (
	styleText   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleFocus  = tcell.StyleDefault.Reverse(true)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAccent = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Draw renders the panel, or a one-line hint while hidden.
func (p *Panel) Draw() {
	s := p.screen
	s.Clear()

	if p.hidden {
		putStr(s, 1, 0, fmt.Sprintf("Settings hidden - press %c to show", config.HideKey), styleDim)
		s.Show()
		return
	}

	cfg := p.shared.Snapshot()
	putStr(s, 1, 0, fmt.Sprintf("%s %s | Settings", config.WindowTitle, config.Version), styleTitle)

	y := 2
	group := 0
	for i, c := range p.controls {
		if c.group != group {
			group = c.group
			y++
		}
		p.drawControl(1, y, c, &cfg, i == p.focus)
		y++
	}

	y++
	putStr(s, 1, y, fmt.Sprintf("Hide keybind: %c (backslash)", config.HideKey), styleTitle)
	y++
	putStr(s, 1, y, "Up/Down select  Left/Right adjust  Enter toggle", styleDim)
	y++
	putStr(s, 1, y, fmt.Sprintf("%s %s - %s", config.WindowTitle, config.Version, config.ProjectURL), styleDim)
	if p.status != "" {
		y += 2
		putStr(s, 1, y, p.status, styleAccent)
	}
	s.Show()
}

func (p *Panel) drawControl(x, y int, c control, cfg *crosshair.Config, focused bool) {
	s := p.screen
	st := styleText
	if focused {
		putStr(s, x, y, ">", styleTitle)
		st = styleFocus
	}
	x += 2

	switch c.kind {
	case kindCheckbox:
		mark := ' '
		if *c.flag(cfg) {
			mark = 'x'
		}
		putStr(s, x, y, fmt.Sprintf("[%c] %s", mark, c.label), st)

	case kindColor:
		rgb := *c.color(cfg)
		n := putStr(s, x, y, pad(c.label, labelWidth), st)
		swatch := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
		putStr(s, x+n+1, y, "  ", swatch)
		putStr(s, x+n+4, y, rgb.Hex(), styleDim)

	case kindSlider:
		n := putStr(s, x, y, pad(c.label, labelWidth), st)
		drawBar(s, x+n+1, y, c.slider.fraction(cfg), rgbStyle(cfg.CrosshairColor))
		putStr(s, x+n+sliderWidth+2, y, fmt.Sprintf("%d", *c.slider.field(cfg)), styleText)

	case kindButton:
		putStr(s, x, y, "[ "+c.label+" ]", st)
	}
}

// drawBar draws a horizontal slider track, filled up to f.
func drawBar(s tcell.Screen, x, y int, f float64, fill tcell.Style) {
	filled := int(float64(sliderWidth)*f + 0.5)
	for i := 0; i < sliderWidth; i++ {
		if i < filled {
			s.SetContent(x+i, y, barFull, nil, fill)
		} else {
			s.SetContent(x+i, y, barEmpty, nil, styleDim)
		}
	}
}

// rgbStyle picks a readable bar colour: dark picks are lifted towards white.
func rgbStyle(c crosshair.RGB) tcell.Style {
	if int(c.R)+int(c.G)+int(c.B) < 96 {
		c = c.Blend(crosshair.RGB{R: 255, G: 255, B: 255}, 0.4)
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// putStr writes str at (x,y) and returns the number of cells used.
func putStr(s tcell.Screen, x, y int, str string, st tcell.Style) int {
	n := 0
	for _, r := range str {
		s.SetContent(x+n, y, r, nil, st)
		n++
	}
	return n
}

func pad(str string, w int) string {
	for len(str) < w {
		str += " "
	}
	return str
}
