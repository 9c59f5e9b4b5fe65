// Package library finds animation files by name, preferring a directory on
// disk and falling back to the animations embedded in the binary.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/milk9111/vecanim/assets"
)

// ErrNotFound is returned when neither the directory nor the embedded set
// has the animation.
var ErrNotFound = errors.New("library: animation not found")

type Library struct {
	dir      string
	embedded fs.FS
}

// New creates a library reading from dir first. An empty dir uses only the
// embedded animations.
func New(dir string) *Library {
	sub, err := fs.Sub(assets.FS(), assets.AnimationsDir)
	if err != nil {
		sub = nil
	}
	return &Library{dir: dir, embedded: sub}
}

// Dir returns the disk directory, if any.
func (l *Library) Dir() string { return l.dir }

// Load returns the bytes of the named animation.
func (l *Library) Load(name string) ([]byte, error) {
	clean := cleanName(name)
	if clean == "" || !IsAnimationFile(clean) {
		return nil, fmt.Errorf("library: load %q: not an animation file", name)
	}
	if l.dir != "" {
		data, err := os.ReadFile(filepath.Join(l.dir, clean))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("library: load %s: %w", clean, err)
		}
	}
	if l.embedded != nil {
		if data, err := fs.ReadFile(l.embedded, clean); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
}

// ModTime reports when the disk copy of name last changed.
func (l *Library) ModTime(name string) (time.Time, bool) {
	if l.dir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(filepath.Join(l.dir, cleanName(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// List returns every available animation name, disk and embedded, sorted
// and without duplicates.
func (l *Library) List() ([]string, error) {
	var names []string
	if l.dir != "" {
		entries, err := os.ReadDir(l.dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("library: list %s: %w", l.dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() && IsAnimationFile(e.Name()) {
				names = append(names, e.Name())
			}
		}
	}
	if l.embedded != nil {
		entries, err := fs.ReadDir(l.embedded, ".")
		if err != nil {
			return nil, fmt.Errorf("library: list embedded: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() && IsAnimationFile(e.Name()) {
				names = append(names, e.Name())
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// IsAnimationFile reports whether path has an animation extension.
func IsAnimationFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func cleanName(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, assets.AnimationsDir+"/"); ok {
		s = after
	}
	return filepath.Base(s)
}
