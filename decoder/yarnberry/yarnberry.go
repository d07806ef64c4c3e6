// Package yarnberry decodes Yarn Berry (v2+) yarn.lock, a YAML document
// discriminated by a top-level "__metadata:" block (§4.2.5). Each other
// mapping entry carries a "resolution: name@npm:version" (or
// "workspace:*" for a direct workspace member) plus nested dependencies
// and peerDependencies blocks.
package yarnberry

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "yarn_lock"

type Decoder struct{}

func (Decoder) PackageType() string { return "npm" }

func (Decoder) IsMatch(path string) bool {
	if filepath.Base(path) != "yarn.lock" {
		return false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line == "__metadata:"
	}
	return false
}

type entry struct {
	Resolution       string            `yaml:"resolution"`
	Version          string            `yaml:"version"`
	Dependencies     map[string]string `yaml:"dependencies"`
	PeerDependencies map[string]string `yaml:"peerDependencies"`
	Checksum         string            `yaml:"checksum"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal()}
	}
	var doc map[string]entry
	if err := yaml.Unmarshal(b, &doc); err != nil {
		slog.WarnContext(ctx, "yarnberry: parse failed", "datasource_id", DatasourceID, "error", err)
		return []pkgmeta.PackageData{minimal()}
	}
	pd := minimal()
	for key, e := range doc {
		if key == "__metadata" {
			continue
		}
		name, resSpec, ok := strings.Cut(e.Resolution, "@npm:")
		isDirect := strings.HasSuffix(e.Resolution, "@workspace:.") || strings.Contains(e.Resolution, "@workspace:")
		if !ok {
			name = firstKeySpec(key)
			resSpec = e.Version
		}
		ns, nm := splitScope(name)
		dep := pkgmeta.Dependency{
			Scope:     "dependencies",
			IsRuntime: true,
			IsPinned:  true,
			IsDirect:  isDirect,
		}
		if isDirect {
			dep.ExtractedRequirement = resSpec
			dep.IsPinned = false
		}
		dep.Purl, _ = purl.Build("npm", ns, nm, e.Version, nil, "")
		if len(e.Dependencies) > 0 || len(e.PeerDependencies) > 0 {
			rp := &pkgmeta.ResolvedPackage{Version: e.Version, Purl: dep.Purl}
			for _, n := range decutil.SortedKeys(e.Dependencies) {
				ns2, nm2 := splitScope(n)
				p, _ := purl.Build("npm", ns2, nm2, "", nil, "")
				rp.Dependencies = append(rp.Dependencies, pkgmeta.Dependency{
					Purl:                 p,
					ExtractedRequirement: e.Dependencies[n],
					Scope:                "dependencies",
					IsRuntime:            true,
				})
			}
			for _, n := range decutil.SortedKeys(e.PeerDependencies) {
				ns2, nm2 := splitScope(n)
				p, _ := purl.Build("npm", ns2, nm2, "", nil, "")
				rp.Dependencies = append(rp.Dependencies, pkgmeta.Dependency{
					Purl:                 p,
					ExtractedRequirement: e.PeerDependencies[n],
					Scope:                "peerDependencies",
					IsRuntime:            true,
					IsOptional:           true,
				})
			}
			dep.ResolvedPackage = rp
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "npm", PrimaryLanguage: "JavaScript", DatasourceID: DatasourceID}
}

// firstKeySpec pulls the first comma-separated spec out of a
// multi-requirement block key, mirroring yarnlock's header parsing.
func firstKeySpec(key string) string {
	first := strings.TrimSpace(strings.Split(key, ",")[0])
	first = strings.Trim(first, `"`)
	rest := first
	scoped := strings.HasPrefix(rest, "@")
	if scoped {
		rest = rest[1:]
	}
	if i := strings.LastIndexByte(rest, '@'); i >= 0 {
		rest = rest[:i]
	}
	if scoped {
		return "@" + rest
	}
	return rest
}

func splitScope(name string) (namespace, bare string) {
	if !strings.HasPrefix(name, "@") {
		return "", name
	}
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
