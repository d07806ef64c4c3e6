// Package nuget decodes .NET NuGet manifests: *.nuspec and
// packages.config (both encoding/xml — no XML library appears
// anywhere in the example corpus for comparable formats, so the
// stdlib struct-tag model is the idiomatic choice here), plus
// packages.lock.json (§4.2.1).
package nuget

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const NuspecDatasourceID = "nuget_nuspec"

type NuspecDecoder struct{}

func (NuspecDecoder) PackageType() string { return "nuget" }

func (NuspecDecoder) IsMatch(path string) bool { return strings.HasSuffix(path, ".nuspec") }

type nuspecDoc struct {
	Metadata struct {
		ID          string `xml:"id"`
		Version     string `xml:"version"`
		Description string `xml:"description"`
		Authors     string `xml:"authors"`
		Owners      string `xml:"owners"`
		ProjectURL  string `xml:"projectUrl"`
		License     string `xml:"license"`
		LicenseURL  string `xml:"licenseUrl"`
		Tags        string `xml:"tags"`
		Repository  struct {
			URL string `xml:"url,attr"`
		} `xml:"repository"`
		Dependencies struct {
			Groups []struct {
				Dependency []struct {
					ID      string `xml:"id,attr"`
					Version string `xml:"version,attr"`
				} `xml:"dependency"`
			} `xml:"group"`
			Dependency []struct {
				ID      string `xml:"id,attr"`
				Version string `xml:"version,attr"`
			} `xml:"dependency"`
		} `xml:"dependencies"`
	} `xml:"metadata"`
}

func (d NuspecDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, NuspecDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalNuspec()}
	}
	return []pkgmeta.PackageData{ParseNuspecBytes(b, NuspecDatasourceID)}
}

// ParseNuspecBytes decodes a .nuspec document already read into memory,
// tagging the result with datasourceID. Shared with decoder/nupkg, which
// extracts this same XML shape from inside a .nupkg zip archive's
// embedded *.nuspec entry rather than reading it as a standalone file.
func ParseNuspecBytes(b []byte, datasourceID string) pkgmeta.PackageData {
	var doc nuspecDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return pkgmeta.PackageData{PackageType: "nuget", DatasourceID: datasourceID}
	}
	m := doc.Metadata
	pd := pkgmeta.PackageData{PackageType: "nuget", DatasourceID: datasourceID}
	pd.Name = m.ID
	pd.Version = m.Version
	pd.Description = m.Description
	pd.HomepageURL = m.ProjectURL
	pd.VCSURL = m.Repository.URL
	if m.License != "" {
		pd.ExtractedLicenseStatement = m.License
	} else {
		pd.ExtractedLicenseStatement = m.LicenseURL
	}
	if m.Tags != "" {
		pd.Keywords = strings.Fields(m.Tags)
	}
	for _, a := range strings.Split(m.Authors, ",") {
		if a = strings.TrimSpace(a); a != "" {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: a})
		}
	}
	for _, o := range strings.Split(m.Owners, ",") {
		if o = strings.TrimSpace(o); o != "" {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleOwner, Name: o})
		}
	}
	addDep := func(id, version string) {
		dep := pkgmeta.Dependency{
			ExtractedRequirement: version,
			Scope:                "dependencies",
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             isPinned(version),
		}
		dep.Purl, _ = purl.Build("nuget", "", id, "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	for _, dep := range m.Dependencies.Dependency {
		addDep(dep.ID, dep.Version)
	}
	for _, g := range m.Dependencies.Groups {
		for _, dep := range g.Dependency {
			addDep(dep.ID, dep.Version)
		}
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("nuget", "", pd.Name, pd.Version, nil, "")
	}
	return pd
}

func isPinned(v string) bool {
	if v == "" {
		return false
	}
	return !strings.ContainsAny(v, "[(,*")
}

func (d NuspecDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalNuspec()
	}
	return pds[0]
}

func minimalNuspec() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "nuget", DatasourceID: NuspecDatasourceID}
}
