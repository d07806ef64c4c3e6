// Package podspec decodes CocoaPods *.podspec files: a line-by-line
// regex scan over the Ruby-like DSL (§4.2.3). No Ruby code is evaluated.
package podspec

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "cocoapods_podspec"

type Decoder struct{}

func (Decoder) PackageType() string { return "cocoapods" }

func (Decoder) IsMatch(path string) bool { return strings.HasSuffix(path, ".podspec") }

var (
	fieldRE      = regexp.MustCompile(`^\s*[\w.]+\.(name|version|summary|homepage|license|source)\s*=\s*(.+)$`)
	dependencyRE = regexp.MustCompile(`^\s*[\w.]+\.dependency\s+['"]([^'"]+)['"]\s*(?:,\s*['"]([^'"]+)['"])?`)
	authorsRE    = regexp.MustCompile(`^\s*[\w.]+\.authors?\s*=\s*(.+)$`)
	heredocStart = regexp.MustCompile(`^\s*[\w.]+\.description\s*=\s*<<-?(\w+)`)
	authorHashRE = regexp.MustCompile(`["']([^"']+)["']\s*=>\s*["']([^"']+)["']`)
)

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "cocoapods", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "podspec: read failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	defer f.Close()

	pd := minimal()
	sc := bufio.NewScanner(f)
	var inHeredoc bool
	var heredocTerm string
	var desc []string
	for sc.Scan() {
		line := sc.Text()
		if inHeredoc {
			if strings.TrimSpace(line) == heredocTerm {
				inHeredoc = false
				pd.Description = strings.Join(desc, "\n")
				continue
			}
			desc = append(desc, line)
			continue
		}
		if m := heredocStart.FindStringSubmatch(line); m != nil {
			inHeredoc = true
			heredocTerm = m[1]
			continue
		}
		if m := fieldRE.FindStringSubmatch(line); m != nil {
			val := unquote(m[2])
			switch m[1] {
			case "name":
				pd.Name = val
			case "version":
				pd.Version = val
			case "summary":
				if pd.Description == "" {
					pd.Description = val
				}
			case "homepage":
				pd.HomepageURL = val
			case "license":
				pd.ExtractedLicenseStatement = val
			case "source":
				pd.VCSURL = val
			}
			continue
		}
		if m := dependencyRE.FindStringSubmatch(line); m != nil {
			dep := pkgmeta.Dependency{
				ExtractedRequirement: m[2],
				Scope:                "dependencies",
				IsRuntime:            true,
				IsDirect:             true,
				IsPinned:             m[2] != "" && !strings.ContainsAny(m[2], "~><="),
			}
			dep.Purl, _ = purl.Build("cocoapods", "", m[1], "", nil, "")
			pd.Dependencies = append(pd.Dependencies, dep)
			continue
		}
		if m := authorsRE.FindStringSubmatch(line); m != nil {
			val := m[1]
			if hashes := authorHashRE.FindAllStringSubmatch(val, -1); len(hashes) > 0 {
				for _, h := range hashes {
					pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: h[1], Email: h[2]})
				}
			} else {
				pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: unquote(val)})
			}
		}
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("cocoapods", "", pd.Name, pd.Version, nil, "")
	}
	return pd
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
