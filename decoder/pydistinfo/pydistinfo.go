// Package pydistinfo decodes the installed-package metadata Python's
// packaging tools leave behind in *.dist-info/METADATA (wheels) and
// *.egg-info/PKG-INFO (eggs/sdists) — "installed artifacts" per the
// Purpose & Scope's discovery target, not a source-tree manifest.
//
// Adapted from the teacher's former python/packagescanner.go, which read
// these same two filenames out of a container layer tar stream; here the
// walker already hands us an ordinary file, so only the RFC 822-style
// header parsing and field mapping survive from that scanner.
package pydistinfo

import (
	"bufio"
	"bytes"
	"context"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/pkg/pep440"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "pypi_dist_info"

type Decoder struct{}

func (Decoder) PackageType() string { return "pypi" }

func (Decoder) IsMatch(path string) bool {
	p := filepath.ToSlash(path)
	return strings.HasSuffix(p, ".dist-info/METADATA") || strings.HasSuffix(p, ".egg-info/PKG-INFO")
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "pypi", PrimaryLanguage: "Python", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return minimal()
	}
	tr := textproto.NewReader(bufio.NewReader(bytes.NewReader(b)))
	hdr, err := tr.ReadMIMEHeader()
	if err != nil && hdr == nil {
		return minimal()
	}

	name := strings.ToLower(hdr.Get("Name"))
	version := hdr.Get("Version")
	if v, err := pep440.Parse(version); err == nil {
		version = v.String()
	}

	pd := pkgmeta.PackageData{
		PackageType:     "pypi",
		PrimaryLanguage: "Python",
		DatasourceID:    DatasourceID,
		Name:            name,
		Version:         version,
		Description:     hdr.Get("Summary"),
		HomepageURL:     hdr.Get("Home-page"),
		ExtractedLicenseStatement: hdr.Get("License"),
		ExtraData:       map[string]any{"install_path": filepath.ToSlash(filepath.Dir(path))},
	}
	for _, k := range hdr["Keywords"] {
		pd.Keywords = append(pd.Keywords, strings.Fields(strings.ReplaceAll(k, ",", " "))...)
	}
	if author := hdr.Get("Author"); author != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: author, Email: hdr.Get("Author-email")})
	}
	if maint := hdr.Get("Maintainer"); maint != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleMaintainer, Name: maint, Email: hdr.Get("Maintainer-email")})
	}
	for _, req := range hdr["Requires-Dist"] {
		depName, extractedReq, extra := splitRequiresDist(req)
		if depName == "" {
			continue
		}
		dep := pkgmeta.Dependency{
			ExtractedRequirement: extractedReq,
			Scope:                "install",
			IsRuntime:            extra == "",
			IsOptional:           extra != "",
			IsDirect:             true,
			IsPinned:             isPinnedPep440(extractedReq),
		}
		dep.Purl, _ = purl.Build("pypi", "", depName, "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("pypi", "", pd.Name, pd.Version, nil, "")
	}
	return pd
}

// splitRequiresDist splits a "Requires-Dist" value such as
// `itsdangerous (>=2.1.2) ; extra == "dotenv"` into the bare requirement
// name, its version specifier, and the extra name when the requirement is
// conditional on one.
func splitRequiresDist(s string) (name, requirement, extra string) {
	if i := strings.Index(s, ";"); i >= 0 {
		cond := s[i+1:]
		s = s[:i]
		if j := strings.Index(cond, `extra ==`); j >= 0 {
			extra = strings.Trim(strings.TrimSpace(cond[j+len(`extra ==`):]), `"'`)
		}
	}
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "([<>=!~ "); i >= 0 {
		name = s[:i]
		requirement = strings.TrimSpace(strings.Trim(strings.TrimSpace(s[i:]), "()"))
	} else {
		name = s
	}
	return strings.TrimSpace(name), requirement, extra
}

// isPinnedPep440 mirrors §4.2.1 step 3: a bare "==x.y.z" with nothing else
// is pinned, any range or comma-joined set is not.
func isPinnedPep440(req string) bool {
	req = strings.TrimSpace(req)
	if req == "" {
		return false
	}
	if strings.Contains(req, ",") {
		return false
	}
	if !strings.HasPrefix(req, "==") {
		return false
	}
	v := strings.TrimPrefix(req, "==")
	return !strings.ContainsAny(v, "*<>!~")
}
