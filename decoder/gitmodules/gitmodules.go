// Package gitmodules decodes .gitmodules: an INI-like format with one
// [submodule "name"] section per entry, each carrying a path and url
// (§4.2.6).
package gitmodules

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

const DatasourceID = "gitmodules"

type Decoder struct{}

func (Decoder) PackageType() string { return "github" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == ".gitmodules" }

var sectionRE = regexp.MustCompile(`^\[submodule\s+"([^"]+)"\]`)

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "gitmodules: read failed", "datasource_id", DatasourceID, "error", err)
		return []pkgmeta.PackageData{minimal()}
	}
	defer f.Close()

	pd := minimal()
	sc := bufio.NewScanner(f)
	var name, url string
	flush := func() {
		if url == "" {
			return
		}
		pd.Dependencies = append(pd.Dependencies, buildDep(name, url))
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if m := sectionRE.FindStringSubmatch(line); m != nil {
			flush()
			name, url = m[1], ""
			continue
		}
		if k, v, ok := strings.Cut(line, "="); ok && strings.TrimSpace(k) == "url" {
			url = strings.TrimSpace(v)
		}
	}
	flush()
	return []pkgmeta.PackageData{pd}
}

func buildDep(name, url string) pkgmeta.Dependency {
	pkgType, namespace, repo := inferTypeFromURL(url)
	dep := pkgmeta.Dependency{
		ExtractedRequirement: "",
		Scope:                "dependencies",
		IsRuntime:            true,
		IsDirect:             true,
		ExtraData:            map[string]any{"name": name, "url": url},
	}
	dep.Purl, _ = purl.Build(pkgType, namespace, repo, "", nil, "")
	return dep
}

// inferTypeFromURL picks pkg:github/... or pkg:gitlab/... by host,
// falling back to "github" for anything unrecognized (the common
// case for bare host-less or self-hosted remotes).
func inferTypeFromURL(url string) (pkgType, namespace, repo string) {
	pkgType = "github"
	s := url
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "git@")
	s = strings.TrimSuffix(s, ".git")
	s = strings.ReplaceAll(s, ":", "/")
	switch {
	case strings.Contains(s, "gitlab.com"):
		pkgType = "gitlab"
	case strings.Contains(s, "github.com"):
		pkgType = "github"
	}
	s = strings.TrimPrefix(s, "gitlab.com/")
	s = strings.TrimPrefix(s, "github.com/")
	parts := strings.SplitN(s, "/", 2)
	if len(parts) == 2 {
		return pkgType, parts[0], parts[1]
	}
	return pkgType, "", s
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "github", DatasourceID: DatasourceID}
}
