package shaderpack

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Bundler struct {
	config   Config
	logger   Logger
	profiler *Profiler
}

type BundlerBuilder struct {
	config Config
	logger Logger
}

func NewBundlerBuilder() *BundlerBuilder {
	return &BundlerBuilder{config: DefaultConfig()}
}

func (b *BundlerBuilder) UseConfig(config Config) *BundlerBuilder {
	b.config = config
	return b
}

func (b *BundlerBuilder) UseLogger(logger Logger) *BundlerBuilder {
	b.logger = logger
	return b
}

func (b *BundlerBuilder) Build() *Bundler {
	logger := b.logger
	if logger == nil {
		logger = NewNopLogger()
	}
	if b.config.Debug {
		logger.SetDebug(true)
	}
	return &Bundler{
		config:   b.config,
		logger:   logger,
		profiler: NewProfiler(),
	}
}

// ArtifactInfo describes one header written by a run.
type ArtifactInfo struct {
	RelPath    string
	OutputPath string
	MacroName  string
	Bytes      int
}

type Report struct {
	RunId     string
	Artifacts []ArtifactInfo
	Profiler  *Profiler
}

func (b *Bundler) Profiler() *Profiler {
	return b.profiler
}

// Run bundles every entry file under the input root and writes the headers.
// Nothing is written unless every entry resolves. Each run gets its own profiler.
func (b *Bundler) Run() (*Report, error) {
	b.profiler = NewProfiler()
	report := &Report{
		RunId:    uuid.NewString(),
		Profiler: b.profiler,
	}
	b.logger.Debugf("bundle run %s: %q -> %q", report.RunId, b.config.InputDir, b.config.OutputDir)

	artifacts, err := b.Build()
	if err != nil {
		return nil, err
	}

	for _, artifact := range artifacts {
		var n int
		var werr error
		b.profiler.Time(ScopeWrite, func() {
			n, werr = artifact.Write()
		})
		if werr != nil {
			return nil, werr
		}
		report.Artifacts = append(report.Artifacts, ArtifactInfo{
			RelPath:    artifact.RelPath,
			OutputPath: artifact.OutputPath,
			MacroName:  artifact.MacroName,
			Bytes:      n,
		})
	}
	b.profiler.AddCount("headers", len(report.Artifacts))

	if b.logger.DebugEnabled() {
		b.logger.Debugf("bundle run %s finished\n%s", report.RunId, b.profiler.StatsString())
	}
	return report, nil
}

// Build discovers and resolves every entry file without touching the output tree.
func (b *Bundler) Build() ([]HeaderArtifact, error) {
	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var entries []string
	var err error
	b.profiler.Time(ScopeDiscover, func() {
		entries, err = DiscoverEntries(b.config.InputDir, b.config.Extensions)
	})
	if err != nil {
		return nil, err
	}
	b.profiler.AddCount("entries", len(entries))
	if len(entries) == 0 {
		b.logger.Warnf("no shader files with extensions %v under %q", b.config.Extensions, b.config.InputDir)
	}

	if b.config.Workers <= 1 || len(entries) <= 1 {
		artifacts := make([]HeaderArtifact, 0, len(entries))
		for _, entry := range entries {
			artifact, err := b.BuildEntry(entry)
			if err != nil {
				return nil, err
			}
			artifacts = append(artifacts, artifact)
		}
		return artifacts, nil
	}
	return b.buildParallel(entries)
}

func (b *Bundler) buildParallel(entries []string) ([]HeaderArtifact, error) {
	artifacts := make([]HeaderArtifact, len(entries))
	errs := make([]error, len(entries))

	var g errgroup.Group
	g.SetLimit(b.config.Workers)
	for i, entry := range entries {
		g.Go(func() error {
			artifacts[i], errs[i] = b.BuildEntry(entry)
			return nil
		})
	}
	g.Wait()

	// Report the failure of the earliest entry, as a sequential run would.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return artifacts, nil
}

// BuildEntry resolves one entry file into its header artifact. Each call uses its
// own LoadedSet.
func (b *Bundler) BuildEntry(entry string) (HeaderArtifact, error) {
	root := b.config.InputDir
	if root == "" {
		root = "."
	}
	rel, err := filepath.Rel(root, entry)
	if err != nil {
		return HeaderArtifact{}, &FileSystemError{Op: "relpath", Path: entry, Err: err}
	}
	b.logger.Infof("Processing file %s", rel)

	var resolved string
	b.profiler.Time(ScopeResolve, func() {
		resolved, err = Resolve(entry, NewLoadedSet())
	})
	if err != nil {
		return HeaderArtifact{}, fmt.Errorf("bundle %s: %w", rel, err)
	}

	var stripped string
	b.profiler.Time(ScopeStrip, func() {
		stripped = StripVersions(resolved)
	})

	var artifact HeaderArtifact
	b.profiler.Time(ScopeEscape, func() {
		artifact = NewHeaderArtifact(b.config.OutputDir, rel, stripped)
	})
	return artifact, nil
}
