package shaderpack

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DiscoverEntries walks root and returns every file whose extension is in exts,
// sorted so repeated runs over the same tree visit files in the same order.
// Symlinked directories are followed; each link target is walked at most once.
func DiscoverEntries(root string, exts []string) ([]string, error) {
	walkRoot := root
	if walkRoot == "" {
		walkRoot = "."
	}

	d := &discovery{
		wanted:  make(map[string]struct{}, len(exts)),
		visited: make(map[string]struct{}),
	}
	for _, ext := range exts {
		d.wanted[ext] = struct{}{}
	}

	dir := walkRoot
	if real, err := filepath.EvalSymlinks(walkRoot); err == nil {
		d.visited[real] = struct{}{}
		dir = real
	}
	if err := d.walk(dir, walkRoot); err != nil {
		return nil, err
	}

	sort.Strings(d.entries)
	return d.entries, nil
}

type discovery struct {
	wanted  map[string]struct{}
	visited map[string]struct{}
	entries []string
}

// walk scans dir and records entries as if dir were located at shown.
func (d *discovery) walk(dir, shown string) error {
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return &FileSystemError{Op: "scan", Path: path, Err: err}
		}
		if dir != shown {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return &FileSystemError{Op: "scan", Path: path, Err: err}
			}
			path = filepath.Join(shown, rel)
		}
		if entry.IsDir() {
			return nil
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			// Dangling links fall through and fail later when read.
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return d.walkLink(path)
			}
		}
		if _, ok := d.wanted[filepath.Ext(path)]; ok {
			d.entries = append(d.entries, path)
		}
		return nil
	})
}

func (d *discovery) walkLink(link string) error {
	real, err := filepath.EvalSymlinks(link)
	if err != nil {
		return &FileSystemError{Op: "scan", Path: link, Err: err}
	}
	if _, seen := d.visited[real]; seen {
		return nil
	}
	d.visited[real] = struct{}{}
	// Entries are reported under the link so they stay inside the input root.
	return d.walk(real, link)
}
