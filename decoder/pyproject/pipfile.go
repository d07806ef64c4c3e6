package pyproject

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const (
	PipfileDatasourceID     = "pypi_pipfile"
	PipfileLockDatasourceID = "pypi_pipfile_lock"
)

// PipfileDecoder handles Pipenv's Pipfile: TOML [packages] / [dev-packages]
// tables, each value a bare version string or a table with a "version"
// key.
type PipfileDecoder struct{}

func (PipfileDecoder) PackageType() string { return "pypi" }

func (PipfileDecoder) IsMatch(path string) bool { return filepath.Base(path) == "Pipfile" }

type pipfileDoc struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}

func (d PipfileDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, PipfileDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalPipfile()}
	}
	var doc pipfileDoc
	if _, err := toml.Decode(string(b), &doc); err != nil {
		return []pkgmeta.PackageData{minimalPipfile()}
	}
	pd := minimalPipfile()
	addPipfileDeps(&pd, "dependencies", doc.Packages, true)
	addPipfileDeps(&pd, "dev", doc.DevPackages, false)
	return []pkgmeta.PackageData{pd}
}

func addPipfileDeps(pd *pkgmeta.PackageData, scope string, pkgs map[string]any, isRuntime bool) {
	for _, name := range decutil.SortedKeys(pkgs) {
		var constraint string
		switch v := pkgs[name].(type) {
		case string:
			constraint = v
		case map[string]any:
			if s, ok := v["version"].(string); ok {
				constraint = s
			}
		}
		if constraint == "*" {
			constraint = ""
		}
		dep := pkgmeta.Dependency{
			ExtractedRequirement: constraint,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           !isRuntime,
			IsDirect:             true,
			IsPinned:             caretPinned(constraint),
		}
		dep.Purl, _ = purl.Build("pypi", "", strings.ToLower(name), "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

func (d PipfileDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalPipfile()
	}
	return pds[0]
}

func minimalPipfile() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "pypi", PrimaryLanguage: "Python", DatasourceID: PipfileDatasourceID}
}

// PipfileLockDecoder handles Pipfile.lock: JSON with "default"/"develop"
// maps, each entry carrying a resolved "version" (e.g. "==1.2.3") and a
// "hashes" array of "sha256:..." tokens.
type PipfileLockDecoder struct{}

func (PipfileLockDecoder) PackageType() string { return "pypi" }

func (PipfileLockDecoder) IsMatch(path string) bool { return filepath.Base(path) == "Pipfile.lock" }

type pipfileLockEntry struct {
	Version string   `json:"version"`
	Hashes  []string `json:"hashes"`
}

type pipfileLockDoc struct {
	Default map[string]pipfileLockEntry `json:"default"`
	Develop map[string]pipfileLockEntry `json:"develop"`
}

func (d PipfileLockDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, PipfileLockDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalPipfileLock()}
	}
	var doc pipfileLockDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return []pkgmeta.PackageData{minimalPipfileLock()}
	}
	pd := minimalPipfileLock()
	addLockDeps(&pd, "dependencies", doc.Default, true)
	addLockDeps(&pd, "dev", doc.Develop, false)
	return []pkgmeta.PackageData{pd}
}

func addLockDeps(pd *pkgmeta.PackageData, scope string, entries map[string]pipfileLockEntry, isRuntime bool) {
	for _, name := range decutil.SortedKeys(entries) {
		e := entries[name]
		version := strings.TrimPrefix(e.Version, "==")
		rp := &pkgmeta.ResolvedPackage{Version: version}
		for _, h := range e.Hashes {
			algo, hex, ok := strings.Cut(h, ":")
			if !ok {
				continue
			}
			switch algo {
			case "sha256":
				rp.Hashes.SHA256 = hex
			case "sha1":
				rp.Hashes.SHA1 = hex
			case "md5":
				rp.Hashes.MD5 = hex
			}
		}
		dep := pkgmeta.Dependency{
			ExtractedRequirement: e.Version,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           !isRuntime,
			IsDirect:             true,
			IsPinned:             version != "",
			ResolvedPackage:      rp,
		}
		dep.Purl, _ = purl.Build("pypi", "", strings.ToLower(name), version, nil, "")
		rp.Purl = dep.Purl
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

func (d PipfileLockDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalPipfileLock()
	}
	return pds[0]
}

func minimalPipfileLock() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "pypi", PrimaryLanguage: "Python", DatasourceID: PipfileLockDatasourceID}
}
