// Package globalkey registers the hide key system-wide, so it works while
// another window has focus.
package globalkey

import (
	"context"

	"golang.design/x/hotkey"
)

// Listener holds one registered hotkey.
type Listener struct {
	hk *hotkey.Hotkey
}

// Register grabs the backslash key without modifiers.
func Register() (*Listener, error) {
	hk := hotkey.New(nil, backslash)
	if err := hk.Register(); err != nil {
		return nil, err
	}
	return &Listener{hk: hk}, nil
}

// Forward calls fn once per key press until ctx ends.
func (l *Listener) Forward(ctx context.Context, fn func()) {
	forward(ctx, l.hk.Keydown(), fn)
}

// Close releases the key.
func (l *Listener) Close() error {
	return l.hk.Unregister()
}

func forward(ctx context.Context, presses <-chan hotkey.Event, fn func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-presses:
			if !ok {
				return
			}
			fn()
		}
	}
}
