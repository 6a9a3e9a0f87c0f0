package shaderpack

import (
	"fmt"
	"strings"
)

// DefaultExtensions are the vertex, geometry and fragment shader extensions.
var DefaultExtensions = []string{".vert", ".geom", ".frag"}

type Config struct {
	// InputDir is the root scanned for entry files. Empty means the current directory.
	InputDir string
	// OutputDir receives the mirrored header tree. Empty means the current directory.
	OutputDir string
	// Extensions selects entry files, compared case-sensitively with the leading dot.
	Extensions []string
	// Workers is the number of entry files resolved concurrently. 0 and 1 are sequential.
	Workers int
	Debug   bool
}

func DefaultConfig() Config {
	exts := make([]string, len(DefaultExtensions))
	copy(exts, DefaultExtensions)
	return Config{
		Extensions: exts,
		Workers:    1,
	}
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", c.Workers)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("no shader extensions configured")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid shader extension %q", ext)
		}
	}
	return nil
}

// ParseExtensions splits a comma separated list like ".vert,.frag".
func ParseExtensions(list string) []string {
	var exts []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		exts = append(exts, part)
	}
	return exts
}
