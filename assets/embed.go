// Package assets embeds the sample animations and the default viewer
// configuration.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

//go:embed animations/*.yaml animations/*.json viewer.yaml
var assetsFS embed.FS

// AnimationsDir is the assets-relative directory holding animations.
const AnimationsDir = "animations"

// FS exposes the embedded files.
func FS() fs.FS {
	return assetsFS
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// Animations lists the embedded animation file names, without directory.
func Animations() ([]string, error) {
	entries, err := fs.ReadDir(assetsFS, AnimationsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// LoadAnimation loads an embedded animation by file name.
func LoadAnimation(name string) ([]byte, error) {
	return LoadFile(path.Join(AnimationsDir, path.Base(filepath.ToSlash(name))))
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(p)
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
