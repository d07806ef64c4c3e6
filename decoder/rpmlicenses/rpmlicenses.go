// Package rpmlicenses decodes the mariner/Azure Linux convention of
// placing each installed RPM's license text under
// /usr/share/licenses/<pkg>/{COPYING*,LICENSE*} (§4.2.6), deriving a
// namespace-less package identity from the path alone.
package rpmlicenses

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "rpm_package_licenses"

type Decoder struct{}

func (Decoder) PackageType() string { return "rpm" }

func (Decoder) IsMatch(path string) bool {
	_, ok := pkgName(path)
	if !ok {
		return false
	}
	b := filepath.Base(path)
	return strings.HasPrefix(b, "COPYING") || strings.HasPrefix(b, "LICENSE")
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(path)
}

func (d Decoder) parse(path string) pkgmeta.PackageData {
	name, ok := pkgName(path)
	if !ok {
		return pkgmeta.PackageData{PackageType: "rpm", DatasourceID: DatasourceID}
	}
	pd := pkgmeta.PackageData{
		PackageType:  "rpm",
		DatasourceID: DatasourceID,
		Namespace:    "mariner",
		Name:         name,
	}
	pd.Purl, _ = purl.Build("rpm", pd.Namespace, pd.Name, "", nil, "")
	return pd
}

// pkgName extracts the path segment between "licenses/" and the license
// file's basename: .../usr/share/licenses/<pkg>/COPYING -> <pkg>.
func pkgName(path string) (string, bool) {
	p := filepath.ToSlash(path)
	const marker = "/licenses/"
	i := strings.LastIndex(p, marker)
	if i < 0 {
		return "", false
	}
	rest := p[i+len(marker):]
	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[0] == "" {
		return "", false
	}
	return parts[0], true
}
