package game

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// Overlay is the transparent, click-through, always-on-top surface that paints the
// crosshair. It reads the shared configuration on every tick.
type Overlay struct {
	shared *crosshair.Shared

	width, height int
	shapes        []crosshair.Shape

	// requests from the settings panel, consumed by the next tick
	restart atomic.Bool
	quit    atomic.Bool

	pixel    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewOverlay(shared *crosshair.Shared) *Overlay {
	return &Overlay{shared: shared}
}

// Restart re-applies the window setup on the next tick.
func (o *Overlay) Restart() { o.restart.Store(true) }

// Quit ends the render loop on the next tick.
func (o *Overlay) Quit() { o.quit.Store(true) }

// Run blocks on the ebiten loop until Quit is called or the loop fails. It must be
// called from the main goroutine.
func (o *Overlay) Run() error {
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TickRate)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)
	applyWindow()

	err := ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		InitUnfocused:     true,
		SkipTaskbar:       true,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (o *Overlay) Update() error {
	if o.restart.Swap(false) {
		log.Printf("overlay: restarting window")
		applyWindow()
	}
	if ebiten.IsWindowBeingClosed() {
		log.Printf("overlay: ignoring close request")
	}
	return o.tick()
}

// tick recomputes the shapes from the current configuration.
func (o *Overlay) tick() error {
	if o.quit.Load() {
		return ebiten.Termination
	}
	cfg := o.shared.Snapshot()
	o.shapes = crosshair.ComputeShapes(crosshair.Center(o.width, o.height), cfg)
	return nil
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	screen.Clear()
	if o.pixel == nil {
		o.pixel = newPixel()
	}
	o.paint(screen, o.shapes)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.width, o.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
