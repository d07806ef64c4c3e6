// Package composer decodes PHP Composer's composer.json and
// composer.lock (§4.2.1).
package composer

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/internal/pin"
	"github.com/quay/pkgmeta/purl"
)

const (
	JSONDatasourceID = "php_composer_json"
	LockDatasourceID = "php_composer_lock"
)

// JSONDecoder handles composer.json.
type JSONDecoder struct{}

func (JSONDecoder) PackageType() string { return "composer" }

func (JSONDecoder) IsMatch(path string) bool { return filepath.Base(path) == "composer.json" }

type jsonManifest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords"`
	Homepage    string            `json:"homepage"`
	License     json.RawMessage   `json:"license"`
	Authors     []authorEntry     `json:"authors"`
	Support     map[string]string `json:"support"`
	Require     map[string]string `json:"require"`
	RequireDev  map[string]string `json:"require-dev"`
}

type authorEntry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Homepage string `json:"homepage"`
	Role     string `json:"role"`
}

func (d JSONDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d JSONDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimalJSON() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "composer", PrimaryLanguage: "PHP", DatasourceID: JSONDatasourceID}
}

func (d JSONDecoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, JSONDatasourceID, path)
	if !ok {
		return minimalJSON()
	}
	var m jsonManifest
	if err := json.Unmarshal(b, &m); err != nil {
		slog.WarnContext(ctx, "composer: parse failed", "datasource_id", JSONDatasourceID, "error", err)
		return minimalJSON()
	}
	pd := pkgmeta.PackageData{
		PackageType:     "composer",
		PrimaryLanguage: "PHP",
		DatasourceID:    JSONDatasourceID,
		Description:     m.Description,
		Keywords:        m.Keywords,
		HomepageURL:     m.Homepage,
	}
	pd.Namespace, pd.Name = splitVendor(m.Name)
	if len(m.License) > 0 {
		var s string
		if json.Unmarshal(m.License, &s) == nil {
			pd.ExtractedLicenseStatement = s
		} else {
			var arr []string
			if json.Unmarshal(m.License, &arr) == nil {
				pd.ExtractedLicenseStatement = strings.Join(arr, ", ")
			}
		}
	}
	for _, a := range m.Authors {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: a.Name, Email: a.Email, URL: a.Homepage})
	}
	if src, ok := m.Support["source"]; ok {
		if pd.ExtraData == nil {
			pd.ExtraData = map[string]any{}
		}
		pd.ExtraData["support.source"] = src
	}
	if issues, ok := m.Support["issues"]; ok {
		pd.BugTrackingURL = issues
	}
	addReq(&pd, m.Require, "require", true, false)
	addReq(&pd, m.RequireDev, "require-dev", false, true)
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("composer", pd.Namespace, pd.Name, "", nil, "")
	}
	return pd
}

func splitVendor(name string) (vendor, bare string) {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func addReq(pd *pkgmeta.PackageData, deps map[string]string, scope string, isRuntime, isOptional bool) {
	for _, n := range decutil.SortedKeys(deps) {
		if n == "php" || strings.HasPrefix(n, "ext-") {
			continue
		}
		req := deps[n]
		ns, nm := splitVendor(n)
		dep := pkgmeta.Dependency{
			ExtractedRequirement: req,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
			IsPinned:             pin.PEPPinned(strings.ReplaceAll(req, "v", "")),
		}
		dep.Purl, _ = purl.Build("composer", ns, nm, "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}
