// Package registry is the parser registry (C2): a map from file path to
// the set of candidate decoders, built once at process start and never
// mutated thereafter (§4.1, §5).
package registry

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/quay/pkgmeta/parser"
)

// Registry holds every registered [parser.Descriptor]. The zero value is
// usable; the package-level [Default] registry is what decoders register
// themselves into from their init funcs.
type Registry struct {
	mu    sync.Mutex // held only during Register; read path is lock-free after Freeze
	descs []parser.Descriptor
	frozen bool
}

// Default is the process-wide registry every shipped decoder registers
// itself into. An orchestrator that wants a custom decoder set can build
// its own Registry instead and ignore Default.
var Default = &Registry{}

// Register adds a descriptor. Intended to be called from package init
// funcs, before any orchestrator run begins; Register panics if called
// after Freeze.
func (r *Registry) Register(d parser.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		panic("registry: Register called after Freeze")
	}
	r.descs = append(r.descs, d)
}

// Freeze sorts the descriptor list by DatasourceID and marks the
// registry read-only. Sorting makes matches' iteration order
// deterministic regardless of init-func ordering, which the
// orchestrator needs for reproducible PackageData ordering (§5
// "Reproducibility requires the registry's iteration to be
// deterministic").
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return
	}
	sort.Slice(r.descs, func(i, j int) bool { return r.descs[i].DatasourceID < r.descs[j].DatasourceID })
	r.frozen = true
}

// Matches returns every descriptor whose glob set matches path, in
// registration (post-Freeze, deterministic) order. The orchestrator is
// expected to additionally consult each matched Parser's IsMatch before
// invoking it, since glob matching here is a coarse filter (§4.1).
func (r *Registry) Matches(path string) []parser.Descriptor {
	base := filepath.Base(path)
	var out []parser.Descriptor
	for _, d := range r.descs {
		for _, g := range d.GlobPatterns {
			ok, err := filepath.Match(g, base)
			if err != nil {
				continue
			}
			if !ok {
				// Also try matching against the full path, for patterns
				// that include directory components (e.g.
				// "**/workspace.yaml"-style globs collapse to a base
				// match above; this handles patterns authored with a
				// leading path segment).
				ok, err = filepath.Match(g, path)
				if err != nil || !ok {
					continue
				}
			}
			out = append(out, d)
			break
		}
	}
	return out
}

// IterAll returns every registered descriptor, for introspection.
func (r *Registry) IterAll() []parser.Descriptor {
	out := make([]parser.Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}
