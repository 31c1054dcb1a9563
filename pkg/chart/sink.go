package chart

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Sink persists charts as PNG files in a directory.
type Sink struct {
	Fs  afero.Fs
	Dir string
	DPI int
}

// Save encodes c into Dir/c.File and returns the written path.
func (s *Sink) Save(c *Chart) (string, error) {
	if c.File == "" {
		return "", fmt.Errorf("chart %q has no file name", c.Title)
	}
	if s.Dir != "" {
		if err := s.Fs.MkdirAll(s.Dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	path := filepath.Join(s.Dir, c.File)

	f, err := s.Fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := c.WritePNG(f, s.DPI); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
