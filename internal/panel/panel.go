// Package panel is the terminal settings panel. It edits the shared crosshair
// configuration in place, so every change shows up on the next overlay tick.
package panel

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
	"github.com/iburimskiy/crosshair-overlay/internal/cue"
)

// Store persists the configuration.
type Store interface {
	Save(crosshair.Config) error
	Load(base crosshair.Config) (crosshair.Config, error)
	Exists() bool
	Path() string
}

// Overlay is the part of the overlay surface the panel drives.
type Overlay interface {
	Restart()
	Quit()
}

// Cues gives audible feedback.
type Cues interface {
	Play(cue.Kind)
}

type Deps struct {
	Store   Store
	Dialogs Dialogs
	Overlay Overlay
	Cues    Cues
}

type Panel struct {
	screen tcell.Screen
	shared *crosshair.Shared
	deps   Deps

	controls []control
	focus    int
	hidden   bool
	done     bool
	status   string
}

// New builds the panel and brings the config in line with the slider ranges.
func New(screen tcell.Screen, shared *crosshair.Shared, deps Deps) *Panel {
	p := &Panel{
		screen:   screen,
		shared:   shared,
		deps:     deps,
		controls: defaultControls(),
	}
	p.sync()
	return p
}

// Hidden reports whether the panel is collapsed by the hide key.
func (p *Panel) Hidden() bool { return p.hidden }

// Run processes terminal events until Exit is chosen or ctx ends.
func (p *Panel) Run(ctx context.Context) {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !p.HandleEvent(ev) {
				return
			}
			p.Draw()
		}
	}
}

// hideToggle marks an interrupt event that flips the panel like the hide key.
type hideToggle struct{}

// NewHideEvent returns the event a system-wide hotkey posts to the panel's
// screen. It is handled on the panel goroutine like a key press.
func NewHideEvent() tcell.Event {
	return tcell.NewEventInterrupt(hideToggle{})
}

// HandleEvent applies one terminal event. It returns false once the panel should stop.
func (p *Panel) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		p.handleKey(ev)
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(hideToggle); ok {
			p.toggleHidden()
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return !p.done
}

func (p *Panel) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		p.exit()
		return
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == config.HideKey {
		p.toggleHidden()
		return
	}
	if p.hidden {
		return
	}

	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyBacktab:
		p.moveFocus(-1)
	case tcell.KeyDown, tcell.KeyTab:
		p.moveFocus(1)
	case tcell.KeyLeft:
		p.adjust(-1)
	case tcell.KeyRight:
		p.adjust(1)
	case tcell.KeyEnter:
		p.activate()
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			p.activate()
		}
	}
}

func (p *Panel) toggleHidden() {
	p.hidden = !p.hidden
	p.play(cue.Toggle)
}

func (p *Panel) moveFocus(dir int) {
	n := len(p.controls)
	p.focus = (p.focus + dir + n) % n
}

// adjust moves a slider or flips a checkbox.
func (p *Panel) adjust(dir int) {
	c := p.controls[p.focus]
	switch c.kind {
	case kindSlider:
		p.shared.Update(func(cfg *crosshair.Config) { c.slider.adjust(cfg, dir) })
	case kindCheckbox:
		p.toggle(c)
	}
}

func (p *Panel) activate() {
	c := p.controls[p.focus]
	switch c.kind {
	case kindCheckbox:
		p.toggle(c)
	case kindColor:
		p.pickColor(c)
	case kindButton:
		c.action(p)
	}
}

func (p *Panel) toggle(c control) {
	p.shared.Update(func(cfg *crosshair.Config) {
		f := c.flag(cfg)
		*f = !*f
	})
	p.play(cue.Toggle)
}

func (p *Panel) pickColor(c control) {
	cur := p.shared.Snapshot()
	rgb, ok, err := p.deps.Dialogs.PickColor(c.label, *c.color(&cur))
	if err != nil {
		p.fail(fmt.Sprintf("Unable to pick color: %v", err))
		return
	}
	if !ok {
		return
	}
	p.shared.Update(func(cfg *crosshair.Config) { *c.color(cfg) = rgb })
	p.status = fmt.Sprintf("%s: %s", c.label, rgb.Hex())
}

// sync pushes the config through the slider rules, as re-seating each slider would.
func (p *Panel) sync() {
	p.shared.Update(func(cfg *crosshair.Config) {
		for _, c := range p.controls {
			if c.kind == kindSlider {
				c.slider.set(cfg, *c.slider.field(cfg))
			}
		}
	})
}

func (p *Panel) save() {
	path := p.deps.Store.Path()
	if p.deps.Store.Exists() && !p.deps.Dialogs.Confirm(fmt.Sprintf("Overwrite %s with the current values?", path)) {
		return
	}
	if err := p.deps.Store.Save(p.shared.Snapshot()); err != nil {
		p.fail(fmt.Sprintf("Unable to save: %v", err))
		return
	}
	p.status = "Saved: " + path
	p.play(cue.Success)
	p.deps.Dialogs.Info(p.status)
}

func (p *Panel) load() {
	cfg, err := p.deps.Store.Load(p.shared.Snapshot())
	if err != nil {
		p.fail(fmt.Sprintf("Unable to load config file: %v", err))
		return
	}
	p.shared.Replace(cfg)
	p.sync()
	p.status = "Loaded: " + p.deps.Store.Path()
	p.play(cue.Success)
}

func (p *Panel) reset() {
	p.shared.Replace(crosshair.Defaults())
	p.sync()
	p.status = "Reset to defaults"
	p.play(cue.Toggle)
}

func (p *Panel) restartOverlay() {
	p.deps.Overlay.Restart()
	p.status = "Overlay restarted"
	p.play(cue.Toggle)
}

func (p *Panel) exit() {
	p.deps.Overlay.Quit()
	p.done = true
}

// fail reports an action error once and leaves the config as it was.
func (p *Panel) fail(msg string) {
	log.Printf("panel: %s", msg)
	p.status = msg
	p.play(cue.Failure)
	p.deps.Dialogs.Error(msg)
}

func (p *Panel) play(k cue.Kind) {
	if p.deps.Cues != nil {
		p.deps.Cues.Play(k)
	}
}
