// Package swiftresolved decodes Swift Package Manager's Package.resolved:
// a JSON document whose root "version" field (1, 2, or 3) selects
// between the v1 object.pins[] shape and the v2/v3 flat pins[] shape
// (§4.2.5, §8).
package swiftresolved

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "swift_package_resolved"

type Decoder struct{}

func (Decoder) PackageType() string { return "swift" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "Package.resolved" }

type v1Pin struct {
	Package       string `json:"package"`
	RepositoryURL string `json:"repositoryURL"`
	State         struct {
		Version  string `json:"version"`
		Revision string `json:"revision"`
	} `json:"state"`
}

type v1Doc struct {
	Version int `json:"version"`
	Object  struct {
		Pins []v1Pin `json:"pins"`
	} `json:"object"`
}

type v23Pin struct {
	Identity string `json:"identity"`
	Kind     string `json:"kind"`
	Location string `json:"location"`
	State    struct {
		Version  string `json:"version"`
		Revision string `json:"revision"`
	} `json:"state"`
}

type v23Doc struct {
	Version int      `json:"version"`
	Pins    []v23Pin `json:"pins"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal()}
	}
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return []pkgmeta.PackageData{minimal()}
	}

	pd := minimal()
	switch probe.Version {
	case 1:
		var doc v1Doc
		if err := json.Unmarshal(b, &doc); err != nil {
			return []pkgmeta.PackageData{minimal()}
		}
		for _, p := range doc.Object.Pins {
			pd.Dependencies = append(pd.Dependencies, buildDep(p.Package, p.RepositoryURL, firstNonEmpty(p.State.Version, p.State.Revision)))
		}
	default: // 2, 3, and unknown future versions share the flat shape
		var doc v23Doc
		if err := json.Unmarshal(b, &doc); err != nil {
			return []pkgmeta.PackageData{minimal()}
		}
		for _, p := range doc.Pins {
			pd.Dependencies = append(pd.Dependencies, buildDep(p.Identity, p.Location, firstNonEmpty(p.State.Version, p.State.Revision)))
		}
	}
	return []pkgmeta.PackageData{pd}
}

func buildDep(name, location, version string) pkgmeta.Dependency {
	namespace, pkgName := splitLocation(location, name)
	dep := pkgmeta.Dependency{
		ExtractedRequirement: version,
		Scope:                "dependencies",
		IsRuntime:            true,
		IsDirect:             true,
		IsPinned:             version != "",
	}
	dep.Purl, _ = purl.Build("swift", namespace, pkgName, version, nil, "")
	return dep
}

// splitLocation derives the purl namespace from the host+path prefix
// of the repository URL and the name from the last path segment
// (stripping ".git"), falling back to the identity string when the
// location can't be parsed as host/path.
func splitLocation(location, fallback string) (namespace, name string) {
	s := location
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "git@")
	s = strings.TrimSuffix(s, ".git")
	s = strings.ReplaceAll(s, ":", "/")
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return "", fallback
	}
	name = parts[len(parts)-1]
	namespace = strings.Join(parts[:len(parts)-1], "/")
	return namespace, name
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "swift", DatasourceID: DatasourceID}
}
