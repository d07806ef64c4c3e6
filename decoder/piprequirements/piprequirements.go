// Package piprequirements decodes pip's requirements.txt: one PEP 508
// requirement per line, blank lines and "#" comments skipped, "-r
// other.txt"/"-e ."/"--hash=..." option lines ignored (§4.2.1).
package piprequirements

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/pin"
	"github.com/quay/pkgmeta/pkg/pep440"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "pip_requirements"

type Decoder struct{}

func (Decoder) PackageType() string { return "pypi" }

func (Decoder) IsMatch(path string) bool {
	b := filepath.Base(path)
	return b == "requirements.txt" || strings.HasPrefix(b, "requirements-") && strings.HasSuffix(b, ".txt")
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "piprequirements: read failed", "datasource_id", DatasourceID, "error", err)
		return []pkgmeta.PackageData{minimal()}
	}
	defer f.Close()

	pd := minimal()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, constraint := splitRequirement(line)
		if name == "" {
			continue
		}
		dep := pkgmeta.Dependency{
			ExtractedRequirement: constraint,
			Scope:                "dependencies",
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             isPinned(constraint),
		}
		dep.Purl, _ = purl.Build("pypi", "", strings.ToLower(name), "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

// isPinned reports whether constraint can only be satisfied by a single
// version, using a real PEP 440 range parse so a multi-clause specifier
// like "requests>=2.31,<2.32" isn't mistaken for a pin just because it's
// narrow. Falls back to pin.PEPPinned's plain prefix check when the
// constraint doesn't parse as a PEP 440 specifier (e.g. a VCS/URL
// requirement with no version expression at all).
func isPinned(constraint string) bool {
	if rng, err := pep440.ParseRange(constraint); err == nil {
		if _, ok := rng.IsExact(); ok {
			return true
		}
		return false
	}
	return pin.PEPPinned(constraint)
}

func splitRequirement(req string) (name, constraint string) {
	req, _, _ = strings.Cut(req, ";")
	req = strings.TrimSpace(req)
	for i, c := range req {
		if c == '=' || c == '>' || c == '<' || c == '!' || c == '~' {
			return strings.TrimSpace(req[:i]), strings.TrimSpace(req[i:])
		}
	}
	return req, ""
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "pypi", PrimaryLanguage: "Python", DatasourceID: DatasourceID}
}
