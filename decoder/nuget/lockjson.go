package nuget

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const PackagesLockDatasourceID = "nuget_packages_lock"

// LockJSONDecoder handles packages.lock.json, NuGet's transitive-closure
// lockfile: one "dependencies" map per target framework, each entry
// carrying a resolved "type" ("Direct" or "Transitive") and a pinned
// "resolved" version.
type LockJSONDecoder struct{}

func (LockJSONDecoder) PackageType() string { return "nuget" }

func (LockJSONDecoder) IsMatch(path string) bool {
	return filepath.Base(path) == "packages.lock.json"
}

type lockJSONDoc struct {
	Dependencies map[string]map[string]struct {
		Type     string `json:"type"`
		Resolved string `json:"resolved"`
	} `json:"dependencies"`
}

func (d LockJSONDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, PackagesLockDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalLockJSON()}
	}
	var doc lockJSONDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return []pkgmeta.PackageData{minimalLockJSON()}
	}
	pd := minimalLockJSON()
	seen := map[string]bool{}
	for _, fwk := range decutil.SortedKeys(doc.Dependencies) {
		for _, name := range decutil.SortedKeys(doc.Dependencies[fwk]) {
			if seen[name] {
				continue
			}
			seen[name] = true
			entry := doc.Dependencies[fwk][name]
			dep := pkgmeta.Dependency{
				Scope:     "dependencies",
				IsRuntime: true,
				IsDirect:  entry.Type == "Direct",
				IsPinned:  entry.Resolved != "",
				ResolvedPackage: &pkgmeta.ResolvedPackage{
					Version: entry.Resolved,
				},
			}
			dep.Purl, _ = purl.Build("nuget", "", name, entry.Resolved, nil, "")
			dep.ResolvedPackage.Purl = dep.Purl
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}
	return []pkgmeta.PackageData{pd}
}

func (d LockJSONDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalLockJSON()
	}
	return pds[0]
}

func minimalLockJSON() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "nuget", DatasourceID: PackagesLockDatasourceID}
}
