package nuget

import (
	"context"
	"encoding/xml"
	"path/filepath"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const PackagesConfigDatasourceID = "nuget_packages_config"

// PackagesConfigDecoder handles the legacy packages.config format.
type PackagesConfigDecoder struct{}

func (PackagesConfigDecoder) PackageType() string { return "nuget" }

func (PackagesConfigDecoder) IsMatch(path string) bool {
	return filepath.Base(path) == "packages.config"
}

type packagesConfigDoc struct {
	Packages []struct {
		ID            string `xml:"id,attr"`
		Version       string `xml:"version,attr"`
		TargetFwk     string `xml:"targetFramework,attr"`
		DevDependency string `xml:"developmentDependency,attr"`
	} `xml:"package"`
}

func (d PackagesConfigDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, PackagesConfigDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalPackagesConfig()}
	}
	var doc packagesConfigDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return []pkgmeta.PackageData{minimalPackagesConfig()}
	}
	pd := minimalPackagesConfig()
	for _, p := range doc.Packages {
		dep := pkgmeta.Dependency{
			ExtractedRequirement: p.Version,
			Scope:                "dependencies",
			IsRuntime:            p.DevDependency != "true",
			IsOptional:           p.DevDependency == "true",
			IsDirect:             true,
			IsPinned:             isPinned(p.Version),
			ExtraData:            map[string]any{"framework": p.TargetFwk},
		}
		dep.Purl, _ = purl.Build("nuget", "", p.ID, p.Version, nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

func (d PackagesConfigDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalPackagesConfig()
	}
	return pds[0]
}

func minimalPackagesConfig() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "nuget", DatasourceID: PackagesConfigDatasourceID}
}
