package shaderpack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroName(t *testing.T) {
	assert.Equal(t, "SHADER_EFFECTS_BLUR_FRAG", MacroName("effects/blur.frag"))
	assert.Equal(t, "SHADER_EFFECTS_BLUR_FRAG", MacroName(`effects\blur.frag`))
	assert.Equal(t, "SHADER_SPRITE_VERT", MacroName("sprite.vert"))
	assert.Equal(t, "SHADER_A_B_C_TERRAIN_LOD_GEOM", MacroName("a/b/c/terrain.lod.geom"))
}

func TestHeaderArtifact_Render(t *testing.T) {
	artifact := NewHeaderArtifact("out", "effects/blur.frag", "#version 330\nvoid main() {} // \"x\"")

	assert.Equal(t, filepath.Join("out", "effects", "blur.frag.h"), artifact.OutputPath)
	assert.Equal(t,
		"#ifndef SHADER_EFFECTS_BLUR_FRAG\n"+
			"#define SHADER_EFFECTS_BLUR_FRAG \"#version 330\\nvoid main() {} // \\\"x\\\"\"\n"+
			"#endif",
		artifact.Render())
}

func TestHeaderArtifact_WriteCreatesDirsAndOverwrites(t *testing.T) {
	out := t.TempDir()
	rel := filepath.Join("deep", "nested", "a.vert")

	first := NewHeaderArtifact(out, rel, "FIRST")
	_, err := first.Write()
	require.NoError(t, err)

	second := NewHeaderArtifact(out, rel, "SECOND")
	n, err := second.Write()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "deep", "nested", "a.vert.h"))
	require.NoError(t, err)
	assert.Equal(t, second.Render(), string(data))
	assert.Equal(t, len(data), n)
}

func TestHeaderArtifact_WriteFailure(t *testing.T) {
	out := t.TempDir()
	// A regular file where a directory is needed.
	blocker := filepath.Join(out, "effects")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewHeaderArtifact(out, filepath.Join("effects", "blur.frag"), "X").Write()

	var fsErr *FileSystemError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "mkdir", fsErr.Op)
}
