// Package condameta decodes Conda recipe/environment manifests:
// meta.yaml (a recipe's package/requirements/about sections, with
// Jinja-style {{ }} templating left as literal text) and
// environment.yml (a flat dependencies[] list, channel-qualified)
// (§4.2.1).
package condameta

import (
	"context"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const (
	MetaYamlDatasourceID       = "conda_meta_json"
	EnvironmentYmlDatasourceID = "conda_environment_yml"
)

type MetaYamlDecoder struct{}

func (MetaYamlDecoder) PackageType() string { return "conda" }

func (MetaYamlDecoder) IsMatch(path string) bool { return filepath.Base(path) == "meta.yaml" }

type metaYamlDoc struct {
	Package struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"package"`
	Source struct {
		URL    string `yaml:"url"`
		SHA256 string `yaml:"sha256"`
	} `yaml:"source"`
	Requirements struct {
		Build []string `yaml:"build"`
		Host  []string `yaml:"host"`
		Run   []string `yaml:"run"`
	} `yaml:"requirements"`
	About struct {
		Home    string `yaml:"home"`
		License string `yaml:"license"`
		Summary string `yaml:"summary"`
		DevURL  string `yaml:"dev_url"`
		DocURL  string `yaml:"doc_url"`
	} `yaml:"about"`
}

func (d MetaYamlDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, MetaYamlDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalMeta()}
	}
	var doc metaYamlDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return []pkgmeta.PackageData{minimalMeta()}
	}
	pd := minimalMeta()
	pd.Name = doc.Package.Name
	pd.Version = doc.Package.Version
	pd.Description = doc.About.Summary
	pd.HomepageURL = doc.About.Home
	pd.DownloadURL = doc.Source.URL
	pd.ExtractedLicenseStatement = doc.About.License
	pd.Hashes.SHA256 = doc.Source.SHA256

	addAll := func(scope string, reqs []string) {
		for _, r := range reqs {
			name, version := splitRequirement(r)
			dep := pkgmeta.Dependency{
				ExtractedRequirement: version,
				Scope:                scope,
				IsRuntime:            scope == "run",
				IsDirect:             true,
				IsPinned:             version != "" && !strings.ContainsAny(version, "<>*"),
			}
			dep.Purl, _ = purl.Build("conda", "", name, "", nil, "")
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}
	addAll("build", doc.Requirements.Build)
	addAll("host", doc.Requirements.Host)
	addAll("run", doc.Requirements.Run)

	if pd.Name != "" {
		pd.Purl, _ = purl.Build("conda", "", pd.Name, pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

// splitRequirement splits a conda-build requirement token like
// "numpy >=1.20" or "python" into name and version constraint.
func splitRequirement(r string) (name, version string) {
	fields := strings.Fields(r)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func (d MetaYamlDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalMeta()
	}
	return pds[0]
}

func minimalMeta() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "conda", DatasourceID: MetaYamlDatasourceID}
}

// EnvironmentYmlDecoder handles environment.yml: name + channels[] +
// a flat dependencies[] list, each optionally "channel::name=version"
// qualified.
type EnvironmentYmlDecoder struct{}

func (EnvironmentYmlDecoder) PackageType() string { return "conda" }

func (EnvironmentYmlDecoder) IsMatch(path string) bool {
	b := filepath.Base(path)
	return b == "environment.yml" || b == "environment.yaml"
}

type environmentDoc struct {
	Name         string   `yaml:"name"`
	Channels     []string `yaml:"channels"`
	Dependencies []any    `yaml:"dependencies"`
}

func (d EnvironmentYmlDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, EnvironmentYmlDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalEnv()}
	}
	var doc environmentDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return []pkgmeta.PackageData{minimalEnv()}
	}
	pd := minimalEnv()
	pd.Name = doc.Name
	for _, raw := range doc.Dependencies {
		spec, ok := raw.(string)
		if !ok {
			continue // nested "pip:" list — out of scope for this decoder
		}
		channel, rest, _ := strings.Cut(spec, "::")
		if rest == "" {
			rest = channel
			channel = ""
		}
		name, version, _ := strings.Cut(rest, "=")
		dep := pkgmeta.Dependency{
			ExtractedRequirement: version,
			Scope:                "dependencies",
			IsRuntime:            true,
			IsDirect:             true,
			IsPinned:             version != "",
		}
		var quals map[string]string
		if channel != "" {
			quals = map[string]string{"channel": channel}
		}
		dep.Purl, _ = purl.Build("conda", channel, name, version, quals, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

func (d EnvironmentYmlDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalEnv()
	}
	return pds[0]
}

func minimalEnv() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "conda", DatasourceID: EnvironmentYmlDatasourceID}
}
