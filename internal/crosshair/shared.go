package crosshair

import "sync"

// Shared is the single live configuration. The overlay tick reads it from the render
// goroutine while the settings panel writes it from its own event loop.
type Shared struct {
	mu  sync.RWMutex
	cfg Config
}

func NewShared(cfg Config) *Shared {
	return &Shared{cfg: cfg}
}

// Snapshot returns a copy of the current configuration.
func (s *Shared) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update applies fn under the write lock.
func (s *Shared) Update(fn func(*Config)) {
	s.mu.Lock()
	fn(&s.cfg)
	s.mu.Unlock()
}

func (s *Shared) Replace(cfg Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}
