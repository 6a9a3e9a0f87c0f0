package shaderpack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const macroPrefix = "SHADER_"

var macroReplacer = strings.NewReplacer("/", "_", `\`, "_", ".", "_")

// HeaderArtifact is one generated header: where it goes, the macro it defines and
// the escaped shader source the macro expands to.
type HeaderArtifact struct {
	RelPath    string
	OutputPath string
	MacroName  string
	Literal    string
}

// MacroName derives the macro for a path relative to the input root,
// e.g. effects/blur.frag -> SHADER_EFFECTS_BLUR_FRAG.
func MacroName(relPath string) string {
	return macroPrefix + macroReplacer.Replace(strings.ToUpper(relPath))
}

// OutputPath mirrors relPath under outputDir with a .h suffix.
func OutputPath(outputDir, relPath string) string {
	return filepath.Join(outputDir, relPath+".h")
}

func NewHeaderArtifact(outputDir, relPath, resolved string) HeaderArtifact {
	return HeaderArtifact{
		RelPath:    relPath,
		OutputPath: OutputPath(outputDir, relPath),
		MacroName:  MacroName(relPath),
		Literal:    Escape(resolved),
	}
}

func (a HeaderArtifact) Render() string {
	return fmt.Sprintf("#ifndef %s\n#define %s \"%s\"\n#endif", a.MacroName, a.MacroName, a.Literal)
}

// Write creates missing parent directories and overwrites any existing file.
func (a HeaderArtifact) Write() (int, error) {
	dir := filepath.Dir(a.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, &FileSystemError{Op: "mkdir", Path: dir, Err: err}
	}
	body := a.Render()
	if err := os.WriteFile(a.OutputPath, []byte(body), 0o644); err != nil {
		return 0, &FileSystemError{Op: "write", Path: a.OutputPath, Err: err}
	}
	return len(body), nil
}
