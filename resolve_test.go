package shaderpack

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DiamondInlinesSharedFileOnce(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.vert": "#include \"b.glsl\"\n#include \"c.glsl\"\nvoid main() {}\n",
		"b.glsl": "#include \"d.glsl\"\nB\n",
		"c.glsl": "#include \"d.glsl\"\nC\n",
		"d.glsl": "D_BODY\n",
	})

	text, err := Resolve(filepath.Join(root, "a.vert"), NewLoadedSet())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(text, "D_BODY"))
	assert.Equal(t, "D_BODY\nB\nC\nvoid main() {}", text)
}

func TestResolve_CycleTerminates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.vert": "A1\n#include \"b.glsl\"\nA2\n",
		"b.glsl": "B1\n#include \"a.vert\"\nB2\n",
	})

	text, err := Resolve(filepath.Join(root, "a.vert"), NewLoadedSet())
	require.NoError(t, err)

	assert.Equal(t, "A1\nB1\n\nB2\nA2", text)
	assert.Equal(t, 1, strings.Count(text, "A1"))
}

func TestResolve_SelfIncludeIsSuppressed(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.frag": "#include \"a.frag\"\nX\n",
	})

	text, err := Resolve(filepath.Join(root, "a.frag"), NewLoadedSet())
	require.NoError(t, err)
	assert.Equal(t, "X", text)
}

func TestResolve_IncludesAreRelativeToIncludingFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.frag":          "#include \"lib/common.glsl\"\nMAIN",
		"lib/common.glsl":    "#include \"util/math.glsl\"\nCOMMON",
		"lib/util/math.glsl": "MATH",
		"util/math.glsl":     "WRONG",
	})

	text, err := Resolve(filepath.Join(root, "main.frag"), NewLoadedSet())
	require.NoError(t, err)
	assert.Equal(t, "MATH\nCOMMON\nMAIN", text)
}

func TestResolve_IncludeOnLastLine(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.vert": "X\n#include \"b.glsl\"",
		"b.glsl": "B",
	})

	text, err := Resolve(filepath.Join(root, "a.vert"), NewLoadedSet())
	require.NoError(t, err)
	assert.Equal(t, "X\nB", text)
}

func TestResolve_CRLFDirective(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.vert": "#include \"b.glsl\"\r\nX\r\n",
		"b.glsl": "B\r\n",
	})

	text, err := Resolve(filepath.Join(root, "a.vert"), NewLoadedSet())
	require.NoError(t, err)
	assert.Equal(t, "B\nX", text)
}

func TestResolve_SharedSetAcrossCalls(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.vert": "A",
	})
	path := filepath.Join(root, "a.vert")

	loaded := NewLoadedSet()
	first, err := Resolve(path, loaded)
	require.NoError(t, err)
	second, err := Resolve(path, loaded)
	require.NoError(t, err)

	assert.Equal(t, "A", first)
	assert.Equal(t, "", second)
	assert.True(t, loaded.Has(filepath.Join(root, ".", "a.vert")))
}

func TestResolve_MissingInclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.vert": "void f();\n#include \"missing.glsl\"\n",
	})

	_, err := Resolve(filepath.Join(root, "a.vert"), NewLoadedSet())
	require.Error(t, err)

	var missing *MissingIncludeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, filepath.Join(root, "missing.glsl"), missing.Path)
	assert.Equal(t, filepath.Join(root, "a.vert"), missing.IncludedFrom)
	assert.Equal(t, 2, missing.Line)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestResolve_MalformedInclude(t *testing.T) {
	tests := map[string]string{
		"angle brackets": "#include <common.glsl>\n",
		"unterminated":   "#include \"common.glsl\n",
		"empty name":     "#include \"\"\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, map[string]string{"a.vert": "X\n" + src})

			_, err := Resolve(filepath.Join(root, "a.vert"), NewLoadedSet())

			var malformed *MalformedDirectiveError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Equal(t, 2, malformed.Line)
		})
	}
}

func TestResolve_MissingEntryIsFileSystemError(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.vert"), NewLoadedSet())

	var fsErr *FileSystemError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "read", fsErr.Op)
}
