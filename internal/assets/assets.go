package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed files/*.svg
var files embed.FS

// Names lists the embedded files.
var Names = []string{
	"placeholder-m.svg",
	"placeholder-f.svg",
	"placeholder-u.svg",
	"marriage.svg",
}

// Read returns the content of an embedded file.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(files, "files/"+name)
}

// DefaultDir returns the per-user cache directory the assets are written to
// when no directory is configured.
func DefaultDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache directory: %w", err)
	}
	return filepath.Join(cache, "ged2dot"), nil
}

// Materialize writes the embedded files into dir, creating it when needed.
// Files already present with the same content are left alone. It returns
// the absolute path of dir.
func Materialize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}

	for _, name := range Names {
		content, err := Read(name)
		if err != nil {
			return "", err
		}
		path := filepath.Join(abs, name)
		if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
			continue
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return "", fmt.Errorf("failed to write asset %s: %w", name, err)
		}
	}
	return abs, nil
}
