package gemfile

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

// LockDecoder handles Gemfile.lock: a state machine over section headers
// GEM, GIT, PATH, SVN, PLATFORMS, BUNDLED WITH, DEPENDENCIES (§4.2.3).
type LockDecoder struct{}

func (LockDecoder) PackageType() string { return "gem" }

func (LockDecoder) IsMatch(path string) bool { return filepath.Base(path) == "Gemfile.lock" }

var specLineRE = regexp.MustCompile(`^( +)([A-Za-z0-9_.\-]+) \(([^)]*)\)`)

func (d LockDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "gemfile.lock: read failed", "datasource_id", LockDatasourceID, "error", err)
		return []pkgmeta.PackageData{minimalLock()}
	}
	defer f.Close()

	pd := minimalLock()
	var section string
	var directNames = map[string]bool{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "GEM", line == "GIT", line == "PATH", line == "SVN", line == "PLATFORMS", line == "DEPENDENCIES", line == "BUNDLED WITH":
			section = line
			continue
		case line == "" || strings.HasPrefix(line, "  remote:") || strings.HasPrefix(line, "  revision:") ||
			strings.HasPrefix(line, "  specs:") || strings.HasPrefix(line, "  ref:") || strings.HasPrefix(line, "  tag:") ||
			strings.HasPrefix(line, "  branch:"):
			continue
		}
		switch section {
		case "GEM", "GIT", "PATH", "SVN":
			m := specLineRE.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			indent, name, version := m[1], m[2], m[3]
			if len(indent) != 4 {
				continue // nested dependency-of-dependency line, not a top-level spec
			}
			dep := pkgmeta.Dependency{
				ExtractedRequirement: version,
				Scope:                "dependencies",
				IsRuntime:            true,
				IsPinned:             true,
			}
			dep.Purl, _ = purl.Build("gem", "", name, version, nil, "")
			pd.Dependencies = append(pd.Dependencies, dep)
		case "DEPENDENCIES":
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			name := strings.Fields(trimmed)[0]
			name = strings.TrimSuffix(name, "!")
			directNames[name] = true
		}
	}
	for i := range pd.Dependencies {
		name := purlName(pd.Dependencies[i].Purl)
		if directNames[name] {
			pd.Dependencies[i].IsDirect = true
		}
	}
	return []pkgmeta.PackageData{pd}
}

func (d LockDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalLock()
	}
	return pds[0]
}

func minimalLock() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "gem", PrimaryLanguage: "Ruby", DatasourceID: LockDatasourceID}
}

func purlName(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return p
	}
	rest := p[i+1:]
	if j := strings.IndexByte(rest, '@'); j >= 0 {
		return rest[:j]
	}
	return rest
}
