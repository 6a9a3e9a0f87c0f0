package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/polyengine/shaderpack"
)

const shaderpackVersion = "0.1.0"

// CLIConfig holds what was requested on the command line.
type CLIConfig struct {
	Bundle   shaderpack.Config
	ShowVer  bool
	ShowHelp bool
}

// ParseCLI parses args (without the program name). Missing positionals leave the
// input and output directories empty, meaning the current directory.
func ParseCLI(args []string, stderr io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{Bundle: shaderpack.DefaultConfig()}

	fs := flag.NewFlagSet("shaderpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(fs) }

	fs.IntVar(&cfg.Bundle.Workers, "workers", 1, "number of entry files resolved concurrently")
	fs.BoolVar(&cfg.Bundle.Debug, "debug", false, "print run diagnostics and timings")
	exts := fs.String("ext", strings.Join(shaderpack.DefaultExtensions, ","), "comma separated entry file extensions")
	fs.BoolVar(&cfg.ShowVer, "version", false, "print version")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			cfg.ShowHelp = true
			return cfg, nil
		}
		return nil, err
	}

	rest := fs.Args()
	if len(rest) > 2 {
		err := fmt.Errorf("too many arguments: %q", rest[2:])
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, err
	}
	if len(rest) >= 1 {
		cfg.Bundle.InputDir = rest[0]
	}
	if len(rest) >= 2 {
		cfg.Bundle.OutputDir = rest[1]
	}
	cfg.Bundle.Extensions = shaderpack.ParseExtensions(*exts)

	return cfg, nil
}

func printHelp(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: shaderpack [options] [input_dir] [output_dir]\n\n")
	fmt.Fprintf(out, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nExamples:\n")
	fmt.Fprintf(out, "  shaderpack shaders include/shaders     Bundle shaders/ into include/shaders/\n")
	fmt.Fprintf(out, "  shaderpack -workers 4 shaders out      Resolve four entry files at a time\n")
}
