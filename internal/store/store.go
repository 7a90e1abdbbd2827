// Package store persists the crosshair configuration as a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// IOError reports a config file that could not be read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports malformed JSON or a missing or invalid field.
type ParseError struct {
	Path  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s: %s: %v", e.Path, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errMissing = errors.New("missing")

// Store reads and writes one config file.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the config file next to the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), config.ConfigFileName), nil
}

func (s *Store) Path() string { return s.path }

// Exists reports whether the config file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save writes cfg with 4-space indentation. RainbowShift is not written.
func (s *Store) Save(cfg crosshair.Config) error {
	f := toFile(cfg)
	data, err := json.MarshalIndent(f, "", "    ")
	if err != nil {
		return &IOError{Op: "encode", Path: s.path, Err: err}
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Load reads the file on top of base. A missing file returns base unchanged.
// Any other failure returns base together with an *IOError or *ParseError, so the
// caller never sees a half-applied config.
func (s *Store) Load(base crosshair.Config) (crosshair.Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, &IOError{Op: "read", Path: s.path, Err: err}
	}

	var f fileConfig
	if err := json.Unmarshal(data, &f); err != nil {
		return base, &ParseError{Path: s.path, Err: err}
	}

	cfg, field, err := f.apply(base)
	if err != nil {
		return base, &ParseError{Path: s.path, Field: field, Err: err}
	}
	return cfg, nil
}
