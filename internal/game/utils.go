package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// vertexColor converts an opaque colour to the 0-1 premultiplied channels DrawTriangles expects.
func vertexColor(c crosshair.RGB) (float32, float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1
}

// primaryMonitor returns the primary display. glfw lists it first.
func primaryMonitor() *ebiten.MonitorType {
	if ms := ebiten.AppendMonitors(nil); len(ms) > 0 {
		return ms[0]
	}
	return ebiten.Monitor()
}

// applyWindow turns the game window into a borderless, topmost, input-transparent
// surface covering the primary display.
func applyWindow() {
	m := primaryMonitor()
	w, h := m.Size()

	ebiten.SetMonitor(m)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	if ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
}
