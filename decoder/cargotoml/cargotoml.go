// Package cargotoml decodes Rust's Cargo.toml manifest, including
// workspace roots (§4.2.1, §4.3). The workspace rewrite itself lives in
// the assembly package; this decoder's job is to emit the raw per-file
// record with enough ExtraData for assembly to act on: "workspace"
// sentinel markers, the workspace.members glob list, and the
// workspace.package / workspace.dependencies tables.
package cargotoml

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/pin"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "cargo_toml"

type Decoder struct{}

func (Decoder) PackageType() string { return "cargo" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "Cargo.toml" }

type document struct {
	Package   map[string]any `toml:"package"`
	Workspace struct {
		Members []string       `toml:"members"`
		Exclude []string       `toml:"exclude"`
		Package map[string]any `toml:"package"`
		Deps    map[string]any `toml:"dependencies"`
	} `toml:"workspace"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
	BuildDeps       map[string]any `toml:"build-dependencies"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "cargo", PrimaryLanguage: "Rust", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		slog.WarnContext(ctx, "cargotoml: parse failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	pd := pkgmeta.PackageData{
		PackageType:     "cargo",
		PrimaryLanguage: "Rust",
		DatasourceID:    DatasourceID,
		ExtraData:       map[string]any{},
	}
	if len(doc.Workspace.Members) > 0 {
		ws := map[string]any{"members": toAnySlice(doc.Workspace.Members)}
		pd.ExtraData["workspace"] = ws
		if doc.Workspace.Package != nil {
			pd.ExtraData["workspace.package"] = doc.Workspace.Package
		}
		if doc.Workspace.Deps != nil {
			pd.ExtraData["workspace.dependencies"] = doc.Workspace.Deps
		}
	}
	if doc.Package == nil {
		// Virtual workspace manifest with no [package] table: still a
		// legal, zero-identity record per §4.1 ("zero-result parses are
		// legal").
		return pd
	}

	inherit := map[string]bool{}
	pd.Name, _ = doc.Package["name"].(string)
	pd.Version, inherit["version"] = stringOrWorkspace(doc.Package["version"])
	if desc, ok := doc.Package["description"].(string); ok {
		pd.Description = desc
	}
	if lic, ok := doc.Package["license"].(string); ok {
		pd.ExtractedLicenseStatement = lic
	} else if _, isWs := workspaceSentinel(doc.Package["license"]); isWs {
		inherit["license"] = true
	}
	if hp, ok := doc.Package["homepage"].(string); ok {
		pd.HomepageURL = hp
	} else if _, isWs := workspaceSentinel(doc.Package["homepage"]); isWs {
		inherit["homepage"] = true
	}
	if repo, ok := doc.Package["repository"].(string); ok {
		pd.VCSURL = repo
	} else if _, isWs := workspaceSentinel(doc.Package["repository"]); isWs {
		inherit["repository"] = true
	}
	if _, isWs := workspaceSentinel(doc.Package["categories"]); isWs {
		inherit["categories"] = true
	} else if cats, ok := doc.Package["categories"].([]any); ok {
		for _, c := range cats {
			if s, ok := c.(string); ok {
				pd.Keywords = append(pd.Keywords, s)
			}
		}
	}
	if kw, ok := doc.Package["keywords"].([]any); ok {
		for _, k := range kw {
			if s, ok := k.(string); ok {
				pd.Keywords = append(pd.Keywords, s)
			}
		}
	}
	if ed, ok := doc.Package["edition"].(string); ok {
		pd.ExtraData["rust_edition"] = ed
	} else if _, isWs := workspaceSentinel(doc.Package["edition"]); isWs {
		inherit["edition"] = true
	}
	if rv, ok := doc.Package["rust-version"].(string); ok {
		pd.ExtraData["rust_version"] = rv
	} else if _, isWs := workspaceSentinel(doc.Package["rust-version"]); isWs {
		inherit["rust-version"] = true
	}
	if _, isWs := workspaceSentinel(doc.Package["authors"]); isWs {
		inherit["authors"] = true
	} else if authors, ok := doc.Package["authors"].([]any); ok {
		for _, a := range authors {
			if s, ok := a.(string); ok {
				pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: s})
			}
		}
	}
	pd.ExtraData["workspace_inherit"] = inherit

	addDeps(&pd, doc.Dependencies, "dependencies", true, false)
	addDeps(&pd, doc.DevDependencies, "dev-dependencies", false, true)
	addDeps(&pd, doc.BuildDeps, "build-dependencies", true, false)

	if pd.Name != "" && pd.Version != "" {
		pd.Purl, _ = purl.Build("cargo", "", pd.Name, pd.Version, nil, "")
	}
	return pd
}

func toAnySlice(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func workspaceSentinel(v any) (bool, bool) {
	tbl, ok := v.(map[string]any)
	if !ok {
		return false, false
	}
	b, ok := tbl["workspace"].(bool)
	return b, ok && b
}

func stringOrWorkspace(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, false
	}
	if ws, ok := workspaceSentinel(v); ok {
		return "", ws
	}
	return "", false
}

func addDeps(pd *pkgmeta.PackageData, deps map[string]any, scope string, isRuntime, isOptional bool) {
	names := make([]string, 0, len(deps))
	for n := range deps {
		names = append(names, n)
	}
	sortStrings(names)
	for _, n := range names {
		v := deps[n]
		dep := pkgmeta.Dependency{Scope: scope, IsRuntime: isRuntime, IsOptional: isOptional, IsDirect: true, ExtraData: map[string]any{"name": n}}
		switch x := v.(type) {
		case string:
			dep.ExtractedRequirement = x
			dep.IsPinned = pin.CargoPinned(x)
		case map[string]any:
			if b, ok := x["workspace"].(bool); ok && b {
				dep.ExtraData["workspace"] = true
			}
			if ver, ok := x["version"].(string); ok {
				dep.ExtractedRequirement = ver
				dep.IsPinned = pin.CargoPinned(ver)
			}
			if opt, ok := x["optional"].(bool); ok && opt {
				dep.IsOptional = true
			}
		}
		if dep.ExtractedRequirement != "" {
			dep.Purl, _ = purl.Build("cargo", "", n, "", nil, "")
		} else {
			dep.Purl, _ = purl.Build("cargo", "", n, "", nil, "")
		}
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
