// Package gemfile decodes Ruby's Gemfile (regex over `gem 'name', …`
// calls) and Gemfile.lock (a state machine over section headers)
// (§4.2.3).
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

const (
	GemfileDatasourceID = "gemfile"
	LockDatasourceID    = "gemfile_lock"
)

var gemLineRE = regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)

// GemfileDecoder handles the plain Gemfile.
type GemfileDecoder struct{}

func (GemfileDecoder) PackageType() string { return "gem" }

func (GemfileDecoder) IsMatch(path string) bool { return filepath.Base(path) == "Gemfile" }

func (d GemfileDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "gemfile: read failed", "datasource_id", GemfileDatasourceID, "error", err)
		return []pkgmeta.PackageData{minimalGemfile()}
	}
	defer f.Close()

	pd := minimalGemfile()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := gemLineRE.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		name, req := m[1], strings.TrimSuffix(m[2], ".freeze")
		dep := pkgmeta.Dependency{
			ExtractedRequirement: req,
			Scope:                "dependencies",
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             req != "" && !strings.ContainsAny(req, "~><="),
		}
		dep.Purl, _ = purl.Build("gem", "", name, "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

func (d GemfileDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalGemfile()
	}
	return pds[0]
}

func minimalGemfile() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "gem", PrimaryLanguage: "Ruby", DatasourceID: GemfileDatasourceID}
}
