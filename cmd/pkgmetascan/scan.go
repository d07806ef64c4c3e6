package main

import (
	"context"
	"sort"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/assembly"
)

// Scan is the top-level orchestrator result: the three collections §5
// says the orchestrator serializes (files[], packages[], dependencies[]),
// plus the scancode-rust-style run summary SPEC_FULL.md supplements.
type Scan struct {
	Files        []*pkgmeta.FileInfo          `json:"files"`
	Packages     []*pkgmeta.Package           `json:"packages"`
	Dependencies []pkgmeta.TopLevelDependency `json:"dependencies"`
}

// Summary tallies files scanned, packages found, and decoder errors
// encountered, grounded on scancode-rust's Summary struct (printed by
// main.rs at the end of a run).
type Summary struct {
	FilesScanned int
	PackageCount int
	ErrorCount   int
}

func (s *Scan) Summary() Summary {
	sum := Summary{FilesScanned: len(s.Files), PackageCount: len(s.Packages)}
	for _, f := range s.Files {
		sum.ErrorCount += len(f.ScanErrors)
	}
	return sum
}

// assemble sorts the worker pool's unordered file list for reproducible
// output (§8's reproducibility property isn't conditioned on walk order,
// but a stable file order makes diffing two runs meaningful) and then
// runs C4 (Assemble) followed by C5 (Attribute), matching §5's sequencing
// requirement.
func assemble(ctx context.Context, files []*pkgmeta.FileInfo) *Scan {
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })

	pkgs, top := assembly.Assemble(ctx, files)
	assembly.Attribute(files, pkgs)

	return &Scan{Files: files, Packages: pkgs, Dependencies: top}
}
