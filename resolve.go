package shaderpack

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const includeToken = "#include"

// LoadedSet holds the normalized paths already inlined while resolving one entry file.
type LoadedSet map[string]struct{}

func NewLoadedSet() LoadedSet {
	return make(LoadedSet)
}

func (s LoadedSet) Has(path string) bool {
	_, ok := s[normalizePath(path)]
	return ok
}

func (s LoadedSet) Add(path string) {
	s[normalizePath(path)] = struct{}{}
}

func normalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Resolve returns the contents of path with every #include directive replaced by
// the resolved contents of the named file. Names are relative to the directory of
// the including file. A file already in loaded contributes nothing, so diamonds
// and cycles inline each file once. Every contribution is whitespace-trimmed.
func Resolve(path string, loaded LoadedSet) (string, error) {
	return resolve(path, loaded, "", 0)
}

func resolve(path string, loaded LoadedSet, from string, fromLine int) (string, error) {
	if loaded.Has(path) {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if from != "" && errors.Is(err, fs.ErrNotExist) {
			return "", &MissingIncludeError{Path: path, IncludedFrom: from, Line: fromLine, Err: err}
		}
		return "", &FileSystemError{Op: "read", Path: path, Err: err}
	}
	loaded.Add(path)

	src := string(data)
	dir := filepath.Dir(path)

	// The output is built from the untouched source: scanning resumes after the
	// directive line, which is where the inlined text ends in the output.
	var b strings.Builder
	pos := 0
	for {
		idx := strings.Index(src[pos:], includeToken)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := lineEnd(src, start)
		line := 1 + strings.Count(src[:start], "\n")

		name, ok := includeName(src[start:end])
		if !ok {
			return "", &MalformedDirectiveError{
				Path: path,
				Line: line,
				Text: strings.TrimRight(src[start:end], "\r"),
			}
		}

		included, err := resolve(filepath.Join(dir, name), loaded, path, line)
		if err != nil {
			return "", err
		}

		b.WriteString(src[pos:start])
		b.WriteString(included)
		// The newline ending the directive line stays in place.
		pos = end
	}
	b.WriteString(src[pos:])

	return strings.TrimSpace(b.String()), nil
}

// lineEnd returns the offset of the newline ending the line containing from,
// or len(s) on the last line.
func lineEnd(s string, from int) int {
	if i := strings.IndexByte(s[from:], '\n'); i >= 0 {
		return from + i
	}
	return len(s)
}

// includeName extracts the first double-quoted string after the include token.
func includeName(directive string) (string, bool) {
	rest := directive[len(includeToken):]
	open := strings.IndexByte(rest, '"')
	if open < 0 {
		return "", false
	}
	rest = rest[open+1:]
	closing := strings.IndexByte(rest, '"')
	if closing <= 0 {
		return "", false
	}
	return rest[:closing], true
}
