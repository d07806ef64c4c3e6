// Package bower decodes Bower's bower.json manifest (§4.2.1).
package bower

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/pin"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "bower_json"

type Decoder struct{}

func (Decoder) PackageType() string { return "bower" }

func (Decoder) IsMatch(path string) bool {
	return filepath.Base(path) == "bower.json"
}

type manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	License      json.RawMessage   `json:"license"`
	Homepage     string            `json:"homepage"`
	Keywords     []string          `json:"keywords"`
	Authors      []json.RawMessage `json:"authors"`
	Dependencies map[string]string `json:"dependencies"`
	DevDeps      map[string]string `json:"devDependencies"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "bower", PrimaryLanguage: "JavaScript", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "bower: read failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	var m manifest
	if err := json.Unmarshal(b, &m); err != nil {
		slog.WarnContext(ctx, "bower: parse failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	pd := pkgmeta.PackageData{
		PackageType:     "bower",
		PrimaryLanguage: "JavaScript",
		DatasourceID:    DatasourceID,
		Name:            m.Name,
		Version:         m.Version,
		Description:     m.Description,
		HomepageURL:     m.Homepage,
		Keywords:        m.Keywords,
	}
	if len(m.License) > 0 {
		var s string
		if err := json.Unmarshal(m.License, &s); err == nil {
			pd.ExtractedLicenseStatement = s
		} else {
			var arr []string
			if err := json.Unmarshal(m.License, &arr); err == nil {
				for i, l := range arr {
					if i > 0 {
						pd.ExtractedLicenseStatement += ", "
					}
					pd.ExtractedLicenseStatement += l
				}
			}
		}
	}
	for _, raw := range m.Authors {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: name})
			continue
		}
		var obj struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			URL   string `json:"homepage"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: obj.Name, Email: obj.Email, URL: obj.URL})
		}
	}
	addDeps(&pd, m.Dependencies, "dependencies", true, false)
	addDeps(&pd, m.DevDeps, "devDependencies", false, true)
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("bower", "", pd.Name, pd.Version, nil, "")
	}
	return pd
}

func addDeps(pd *pkgmeta.PackageData, deps map[string]string, scope string, isRuntime, isOptional bool) {
	names := make([]string, 0, len(deps))
	for n := range deps {
		names = append(names, n)
	}
	// bower.json dependency order isn't semantically meaningful in Go's
	// map, but decoder output should still be reproducible; sort.
	sortStrings(names)
	for _, n := range names {
		req := deps[n]
		dep := pkgmeta.Dependency{
			ExtractedRequirement: req,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
			IsPinned:             pin.NPMPinned(req),
		}
		dep.Purl, _ = purl.Build("bower", "", n, "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
