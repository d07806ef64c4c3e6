package conan

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const LockDatasourceID = "conan_lock"

// LockDecoder handles conan.lock: JSON, walking graph_lock.nodes[*].ref,
// each ref shaped "name/version[@user/channel]" (§4.2.5).
type LockDecoder struct{}

func (LockDecoder) PackageType() string { return "conan" }

func (LockDecoder) IsMatch(path string) bool { return filepath.Base(path) == "conan.lock" }

type lockFile struct {
	GraphLock struct {
		Nodes map[string]struct {
			Ref string `json:"ref"`
		} `json:"nodes"`
	} `json:"graph_lock"`
}

func (d LockDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, LockDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalLock()}
	}
	var raw lockFile
	if err := json.Unmarshal(b, &raw); err != nil {
		return []pkgmeta.PackageData{minimalLock()}
	}
	pd := minimalLock()
	first := true
	for _, k := range decutil.SortedKeys(raw.GraphLock.Nodes) {
		ref := raw.GraphLock.Nodes[k].Ref
		if ref == "" {
			continue
		}
		name, version := parseRef(ref)
		dep := pkgmeta.Dependency{
			ExtractedRequirement: version,
			Scope:                "install",
			IsRuntime:            true,
			IsPinned:             version != "",
			IsDirect:             first,
		}
		dep.Purl, _ = purl.Build("conan", "", name, version, nil, "")
		if first {
			pd.Name, pd.Version = name, version
			pd.Purl = dep.Purl
			first = false
			continue
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

// parseRef splits a conan reference "name/version@user/channel" into
// name and version, discarding the optional @user/channel suffix.
func parseRef(ref string) (name, version string) {
	ref, _, _ = strings.Cut(ref, "@")
	name, version, _ = strings.Cut(ref, "/")
	return name, version
}

func (d LockDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalLock()
	}
	return pds[0]
}

func minimalLock() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "conan", DatasourceID: LockDatasourceID}
}
