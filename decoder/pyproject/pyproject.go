// Package pyproject decodes Python project manifests: pyproject.toml
// (PEP 621 [project] table plus Poetry's [tool.poetry] dialect) and
// Pipenv's Pipfile/Pipfile.lock (§4.2.1).
package pyproject

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/internal/pin"
	"github.com/quay/pkgmeta/pkg/pep440"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "pypi_pyproject_toml"

type Decoder struct{}

func (Decoder) PackageType() string { return "pypi" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "pyproject.toml" }

type pyprojectDoc struct {
	Project struct {
		Name            string   `toml:"name"`
		Version         string   `toml:"version"`
		Description     string   `toml:"description"`
		Keywords        []string `toml:"keywords"`
		Dependencies    []string `toml:"dependencies"`
		License         any      `toml:"license"`
		Authors         []struct {
			Name  string `toml:"name"`
			Email string `toml:"email"`
		} `toml:"authors"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
		URLs                 map[string]string   `toml:"urls"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name         string            `toml:"name"`
			Version      string            `toml:"version"`
			Description  string            `toml:"description"`
			Homepage     string            `toml:"homepage"`
			Repository   string            `toml:"repository"`
			License      string            `toml:"license"`
			Authors      []string          `toml:"authors"`
			Dependencies map[string]any    `toml:"dependencies"`
			Group        map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal()}
	}
	var doc pyprojectDoc
	if _, err := toml.Decode(string(b), &doc); err != nil {
		return []pkgmeta.PackageData{minimal()}
	}
	pd := minimal()
	switch {
	case doc.Project.Name != "":
		pd.Name = doc.Project.Name
		pd.Version = doc.Project.Version
		pd.Description = doc.Project.Description
		pd.Keywords = doc.Project.Keywords
		if s, ok := doc.Project.License.(string); ok {
			pd.ExtractedLicenseStatement = s
		} else if m, ok := doc.Project.License.(map[string]any); ok {
			if t, ok := m["text"].(string); ok {
				pd.ExtractedLicenseStatement = t
			}
		}
		for _, a := range doc.Project.Authors {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: a.Name, Email: a.Email})
		}
		if h := doc.Project.URLs["Homepage"]; h != "" {
			pd.HomepageURL = h
		}
		for _, req := range doc.Project.Dependencies {
			pd.Dependencies = append(pd.Dependencies, buildPEPDep(req, "dependencies", true, false, true))
		}
		for extra, reqs := range doc.Project.OptionalDependencies {
			for _, req := range reqs {
				pd.Dependencies = append(pd.Dependencies, buildPEPDep(req, extra, false, true, true))
			}
		}
	case doc.Tool.Poetry.Name != "":
		pd.Name = doc.Tool.Poetry.Name
		pd.Version = doc.Tool.Poetry.Version
		pd.Description = doc.Tool.Poetry.Description
		pd.HomepageURL = doc.Tool.Poetry.Homepage
		pd.VCSURL = doc.Tool.Poetry.Repository
		pd.ExtractedLicenseStatement = doc.Tool.Poetry.License
		for _, a := range doc.Tool.Poetry.Authors {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: a})
		}
		addPoetryDeps(&pd, "dependencies", doc.Tool.Poetry.Dependencies, true)
		for group, g := range doc.Tool.Poetry.Group {
			addPoetryDeps(&pd, group, g.Dependencies, false)
		}
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("pypi", "", strings.ToLower(pd.Name), pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

func addPoetryDeps(pd *pkgmeta.PackageData, scope string, deps map[string]any, isRuntime bool) {
	for _, name := range decutil.SortedKeys(deps) {
		if strings.EqualFold(name, "python") {
			continue
		}
		var constraint string
		switch v := deps[name].(type) {
		case string:
			constraint = v
		case map[string]any:
			if s, ok := v["version"].(string); ok {
				constraint = s
			}
		}
		dep := pkgmeta.Dependency{
			ExtractedRequirement: constraint,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           !isRuntime,
			IsDirect:             true,
			IsPinned:             caretPinned(constraint),
		}
		dep.Purl, _ = purl.Build("pypi", "", strings.ToLower(name), "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

// caretPinned treats a bare exact version (no operator/range symbol)
// as pinned; Poetry's own caret/tilde defaults are not.
func caretPinned(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.ContainsAny(v, "^~<>*, ")
}

func buildPEPDep(req, scope string, isRuntime, isOptional, isDirect bool) pkgmeta.Dependency {
	name, constraint := splitPEP508(req)
	dep := pkgmeta.Dependency{
		ExtractedRequirement: constraint,
		Scope:                scope,
		IsRuntime:            isRuntime,
		IsOptional:           isOptional,
		IsDirect:             isDirect,
		IsPinned:             isPEPPinned(constraint),
	}
	dep.Purl, _ = purl.Build("pypi", "", strings.ToLower(name), "", nil, "")
	return dep
}

// isPEPPinned reports whether constraint resolves to exactly one
// version under a real PEP 440 range parse, falling back to
// pin.PEPPinned's prefix check for constraints that aren't valid PEP
// 440 specifiers (VCS/URL requirements, bare markers with no version).
func isPEPPinned(constraint string) bool {
	if rng, err := pep440.ParseRange(constraint); err == nil {
		_, ok := rng.IsExact()
		return ok
	}
	return pin.PEPPinned(constraint)
}

// splitPEP508 splits a PEP 508 requirement string ("requests>=2.0; extra")
// into its bare distribution name and the first version specifier.
func splitPEP508(req string) (name, constraint string) {
	req = strings.TrimSpace(req)
	req, _, _ = strings.Cut(req, ";")
	req = strings.TrimSpace(req)
	if i, j := strings.IndexByte(req, '['), strings.IndexByte(req, ']'); i >= 0 && j > i {
		req = req[:i] + req[j+1:]
	}
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
