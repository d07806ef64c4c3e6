// Package parser declares the contract every format decoder (C3)
// implements, shared by the registry (C2) and the orchestrator.
package parser

import (
	"context"

	"github.com/quay/pkgmeta"
)

// Parser is the decoder contract (§4.1).
//
// A Parser never aborts the run on malformed input: on a read or format
// error it returns a single minimal [pkgmeta.PackageData] carrying only
// PackageType, PrimaryLanguage, and DatasourceID, per the §4.1 failure
// policy. A Parser is not reentrant across goroutines unless stated
// otherwise by the implementation; the orchestrator's worker pool gives
// each file to exactly one worker at a time (§5).
type Parser interface {
	// PackageType is the default package_type this decoder emits.
	PackageType() string
	// IsMatch is a cheap, decoder-specific predicate, stricter than the
	// glob patterns advertised by the registry descriptor. The
	// orchestrator always consults IsMatch before invoking a decoder.
	IsMatch(path string) bool
	// ExtractPackages is the primary entry point. Zero-result and
	// single-minimal-record results are both legal.
	ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData
	// ExtractFirstPackage is a convenience wrapper around
	// ExtractPackages for callers that only want one record.
	ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData
}

// Descriptor is the static, once-registered metadata for a Parser (§4.1,
// §5 "constructed once at startup... immutable thereafter").
type Descriptor struct {
	// DatasourceID is the stable tag this decoder's records carry (§6.4).
	DatasourceID string
	// Description is a short human-readable summary.
	Description string
	// GlobPatterns is the coarse, discovery-facing glob set. Actual
	// dispatch is gated by the Parser's own IsMatch.
	GlobPatterns []string
	// DefaultPackageType mirrors Parser.PackageType() for introspection
	// without constructing an instance.
	DefaultPackageType string
	// PrimaryLanguage is the language this format is associated with, if
	// any (e.g. "JavaScript" for package.json).
	PrimaryLanguage string
	// SpecURL documents the manifest format this decoder implements.
	SpecURL string
	// Factory constructs a fresh Parser instance. Decoders are typically
	// stateless and the factory may return the same value every time.
	Factory func() Parser
}
