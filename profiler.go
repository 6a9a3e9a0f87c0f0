package shaderpack

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	ScopeDiscover = "Discover"
	ScopeResolve  = "Resolve"
	ScopeStrip    = "Strip"
	ScopeEscape   = "Escape"
	ScopeWrite    = "Write"
)

// Profiler accumulates wall time per named scope across all entry files of a run.
type Profiler struct {
	mu     sync.Mutex
	Scopes map[string]time.Duration
	Counts map[string]int
	Order  []string
}

func NewProfiler() *Profiler {
	return &Profiler{
		Scopes: make(map[string]time.Duration),
		Counts: make(map[string]int),
		Order:  make([]string, 0),
	}
}

// Time runs fn and adds its duration to the named scope.
func (p *Profiler) Time(name string, fn func()) {
	start := time.Now()
	fn()
	p.Record(name, time.Since(start))
}

func (p *Profiler) Record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.Scopes[name]; !ok {
		p.Order = append(p.Order, name)
	}
	p.Scopes[name] += d
}

func (p *Profiler) AddCount(name string, n int) {
	p.mu.Lock()
	p.Counts[name] += n
	p.mu.Unlock()
}

func (p *Profiler) StatsString() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("Timings:\n")
	for _, name := range p.Order {
		ms := float64(p.Scopes[name].Microseconds()) / 1000.0
		sb.WriteString(fmt.Sprintf("  %-10s: %.2f ms\n", name, ms))
	}

	sb.WriteString("\nStats:\n")
	keys := make([]string, 0, len(p.Counts))
	for k := range p.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %-10s: %d\n", k, p.Counts[k]))
	}

	return sb.String()
}
