// Command shaderpack bundles shader sources into C headers.
//
// Usage:
//
//	shaderpack [options] [input_dir] [output_dir]
//
// Every .vert, .geom and .frag file under input_dir has its #include directives
// inlined and is written to output_dir/<relative path>.h as a single string macro.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/polyengine/shaderpack"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseCLI(args, stderr)
	if err != nil {
		return 2
	}
	if cfg.ShowHelp {
		return 0
	}
	if cfg.ShowVer {
		fmt.Fprintf(stdout, "shaderpack version %s\n", shaderpackVersion)
		return 0
	}

	logger := shaderpack.NewWriterLogger(stdout, stderr, "", cfg.Bundle.Debug)
	bundler := shaderpack.NewBundlerBuilder().
		UseConfig(cfg.Bundle).
		UseLogger(logger).
		Build()

	if _, err := bundler.Run(); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}
