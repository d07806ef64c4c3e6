// Package podfilelock decodes CocoaPods Podfile.lock: parsed as YAML,
// then post-processed to match pod dependency lines of the form
// "Pod/SubSpec (= 1.2.3)", building a dependency tree with
// resolved_package.dependencies for subspec children, plus SHA-1
// checksums from SPEC CHECKSUMS keyed on the top-level pod name (§4.2.3).
package podfilelock

import (
	"context"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "cocoapods_podfile_lock"

type Decoder struct{}

func (Decoder) PackageType() string { return "cocoapods" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "Podfile.lock" }

var podLineRE = regexp.MustCompile(`^([^/\s(]+(?:/[^\s(]+)?)(?:\s*\(([^)]*)\))?`)

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal()}
	}
	var raw struct {
		Pods          []any             `yaml:"PODS"`
		SpecChecksums map[string]string `yaml:"SPEC CHECKSUMS"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		slog.WarnContext(ctx, "podfilelock: parse failed", "datasource_id", DatasourceID, "error", err)
		return []pkgmeta.PackageData{minimal()}
	}
	pd := minimal()
	// top-level pod name -> dependency, to attach subspec children and
	// checksum
	top := map[string]*pkgmeta.Dependency{}
	for _, item := range raw.Pods {
		parseEntry(item, &pd, top)
	}
	for name, sum := range raw.SpecChecksums {
		if dep, ok := top[name]; ok {
			dep.ResolvedPackage.Hashes.SHA1 = sum
		}
	}
	return []pkgmeta.PackageData{pd}
}

func parseEntry(item any, pd *pkgmeta.PackageData, top map[string]*pkgmeta.Dependency) {
	switch v := item.(type) {
	case string:
		addPod(v, pd, top, nil)
	case map[string]any:
		for k, children := range v {
			dep := addPod(k, pd, top, nil)
			if dep == nil {
				continue
			}
			if list, ok := children.([]any); ok {
				for _, c := range list {
					if s, ok := c.(string); ok {
						addPod(s, nil, top, dep)
					}
				}
			}
		}
	}
}

func addPod(raw string, pd *pkgmeta.PackageData, top map[string]*pkgmeta.Dependency, parent *pkgmeta.Dependency) *pkgmeta.Dependency {
	m := podLineRE.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	full, constraint := m[1], strings.TrimSpace(m[2])
	name := full
	if i := strings.IndexByte(full, '/'); i >= 0 {
		name = full[:i]
	}
	rp := &pkgmeta.ResolvedPackage{}
	dep := pkgmeta.Dependency{
		ExtractedRequirement: constraint,
		Scope:                "dependencies",
		IsRuntime:            true,
		IsPinned:             strings.HasPrefix(constraint, "="),
		ResolvedPackage:      rp,
	}
	version := strings.TrimSpace(strings.TrimPrefix(constraint, "="))
	rp.Version = version
	dep.Purl, _ = purl.Build("cocoapods", "", full, version, nil, "")
	rp.Purl = dep.Purl

	if parent != nil {
		dep.IsDirect = false
		parent.ResolvedPackage.Dependencies = append(parent.ResolvedPackage.Dependencies, dep)
		return nil
	}
	dep.IsDirect = true
	if pd != nil {
		pd.Dependencies = append(pd.Dependencies, dep)
		stored := &pd.Dependencies[len(pd.Dependencies)-1]
		top[name] = stored
		return stored
	}
	return &dep
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "cocoapods", DatasourceID: DatasourceID}
}
