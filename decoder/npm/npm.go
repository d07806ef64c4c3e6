// Package npm decodes npm's package.json manifest (§4.2.1).
package npm

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

const DatasourceID = "npm_package_json"

type Decoder struct{}

func (Decoder) PackageType() string { return "npm" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "package.json" }

type person struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	URL   string `json:"url"`
}

func (p *person) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		// "Name <email> (url)"
		rest := s
		if i := strings.IndexByte(rest, '<'); i >= 0 {
			p.Name = strings.TrimSpace(rest[:i])
			rest = rest[i+1:]
			if j := strings.IndexByte(rest, '>'); j >= 0 {
				p.Email = rest[:j]
				rest = rest[j+1:]
			}
		} else {
			p.Name = strings.TrimSpace(rest)
			rest = ""
		}
		if i := strings.IndexByte(rest, '('); i >= 0 {
			if j := strings.IndexByte(rest, ')'); j > i {
				p.URL = rest[i+1 : j]
			}
		}
		return nil
	}
	var obj struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	p.Name, p.Email, p.URL = obj.Name, obj.Email, obj.URL
	return nil
}

type manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Keywords        []string          `json:"keywords"`
	Homepage        string            `json:"homepage"`
	License         json.RawMessage   `json:"license"`
	Author          *person           `json:"author"`
	Contributors    []person          `json:"contributors"`
	Maintainers     []person          `json:"maintainers"`
	Repository      json.RawMessage   `json:"repository"`
	Bugs            json.RawMessage   `json:"bugs"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	PeerDeps        map[string]string `json:"peerDependencies"`
	OptionalDeps    map[string]string `json:"optionalDependencies"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "npm", PrimaryLanguage: "JavaScript", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return minimal()
	}
	var m manifest
	if err := json.Unmarshal(b, &m); err != nil {
		slog.WarnContext(ctx, "npm: parse failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	pd := pkgmeta.PackageData{
		PackageType:     "npm",
		PrimaryLanguage: "JavaScript",
		DatasourceID:    DatasourceID,
		Description:     m.Description,
		Keywords:        m.Keywords,
		HomepageURL:     m.Homepage,
	}
	pd.Namespace, pd.Name = splitScope(m.Name)
	pd.Version = m.Version
	if len(m.License) > 0 {
		var s string
		if json.Unmarshal(m.License, &s) == nil {
			pd.ExtractedLicenseStatement = s
		} else {
			var obj struct {
				Type string `json:"type"`
			}
			if json.Unmarshal(m.License, &obj) == nil {
				pd.ExtractedLicenseStatement = obj.Type
			}
		}
	}
	if m.Author != nil && m.Author.Name != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: m.Author.Name, Email: m.Author.Email, URL: m.Author.URL})
	}
	for _, c := range m.Contributors {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleContributor, Name: c.Name, Email: c.Email, URL: c.URL})
	}
	for _, c := range m.Maintainers {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleMaintainer, Name: c.Name, Email: c.Email, URL: c.URL})
	}
	if len(m.Repository) > 0 {
		var s string
		if json.Unmarshal(m.Repository, &s) == nil {
			pd.VCSURL = s
		} else {
			var obj struct {
				URL string `json:"url"`
			}
			if json.Unmarshal(m.Repository, &obj) == nil {
				pd.VCSURL = obj.URL
			}
		}
	}
	if len(m.Bugs) > 0 {
		var s string
		if json.Unmarshal(m.Bugs, &s) == nil {
			pd.BugTrackingURL = s
		} else {
			var obj struct {
				URL string `json:"url"`
			}
			if json.Unmarshal(m.Bugs, &obj) == nil {
				pd.BugTrackingURL = obj.URL
			}
		}
	}
	addDeps(&pd, m.Dependencies, "dependencies", true, false)
	addDeps(&pd, m.DevDependencies, "devDependencies", false, true)
	addDeps(&pd, m.PeerDeps, "peerDependencies", true, false)
	addDeps(&pd, m.OptionalDeps, "optionalDependencies", true, true)
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("npm", pd.Namespace, pd.Name, pd.Version, nil, "")
	}
	return pd
}

// splitScope splits a "@scope/name" package name into (namespace, name),
// keeping the "@" on the namespace per §4.2.1 step 4.
func splitScope(name string) (namespace, bare string) {
	if !strings.HasPrefix(name, "@") {
		return "", name
	}
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func addDeps(pd *pkgmeta.PackageData, deps map[string]string, scope string, isRuntime, isOptional bool) {
	for _, n := range decutil.SortedKeys(deps) {
		req := deps[n]
		ns, nm := splitScope(n)
		dep := pkgmeta.Dependency{
			ExtractedRequirement: req,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
			IsPinned:             pin.NPMPinned(req),
		}
		dep.Purl, _ = purl.Build("npm", ns, nm, "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}
