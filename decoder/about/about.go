// Package about decodes AboutCode .ABOUT files: YAML records where an
// explicit purl, when present, takes precedence over the individually
// declared type/namespace/name/version fields (§4.2.6).
package about

import (
	"context"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "about_file"

type Decoder struct{}

func (Decoder) PackageType() string { return "about" }

func (Decoder) IsMatch(path string) bool { return strings.HasSuffix(path, ".ABOUT") }

type aboutDoc struct {
	AboutResource string `yaml:"about_resource"`
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	Namespace     string `yaml:"namespace"`
	PackageType   string `yaml:"package_type"` // or "type" in some dialects
	Type          string `yaml:"type"`
	Description   string `yaml:"description"`
	HomepageURL   string `yaml:"homepage_url"`
	DownloadURL   string `yaml:"download_url"`
	License       string `yaml:"license_expression"`
	Owner         string `yaml:"owner"`
	Purl          string `yaml:"purl"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal()}
	}
	var doc aboutDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return []pkgmeta.PackageData{minimal()}
	}
	pd := minimal()
	pkgType := doc.PackageType
	if pkgType == "" {
		pkgType = doc.Type
	}
	pd.PackageType = pkgType
	pd.Namespace = doc.Namespace
	pd.Name = doc.Name
	pd.Version = doc.Version
	pd.Description = doc.Description
	pd.HomepageURL = doc.HomepageURL
	pd.DownloadURL = doc.DownloadURL
	pd.ExtractedLicenseStatement = doc.License
	if doc.Owner != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleOwner, Name: doc.Owner})
	}

	if doc.Purl != "" {
		// An explicit purl wins over the individually declared
		// identity fields (§4.2.6 "usual precedence order").
		if typ, ns, name, version, _, err := purl.Parse(doc.Purl); err == nil {
			pd.PackageType, pd.Namespace, pd.Name, pd.Version = typ, ns, name, version
			pd.Purl = doc.Purl
		}
	} else if pd.PackageType != "" && pd.Name != "" {
		pd.Purl, _ = purl.Build(pd.PackageType, pd.Namespace, pd.Name, pd.Version, nil, "")
	}
	if pd.PackageType == "" {
		pd.PackageType = "about"
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
	return pkgmeta.PackageData{PackageType: "about", DatasourceID: DatasourceID}
}
