// Package cpan decodes Perl CPAN manifests: Dist::Zilla's dist.ini
// (plain INI) and ExtUtils::MakeMaker's Makefile.PL (regex + bracket
// balancing over the WriteMakefile(...) call) (§4.2.3).
package cpan

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

const DistIniDatasourceID = "cpan_dist_ini"

type DistIniDecoder struct{}

func (DistIniDecoder) PackageType() string { return "cpan" }

func (DistIniDecoder) IsMatch(path string) bool { return filepath.Base(path) == "dist.ini" }

func (d DistIniDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "cpan: dist.ini read failed", "datasource_id", DistIniDatasourceID, "error", err)
		return []pkgmeta.PackageData{minimalDistIni()}
	}
	defer f.Close()

	pd := minimalDistIni()
	sc := bufio.NewScanner(f)
	var section string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.Trim(line, "[]")
			continue
		}
		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		switch {
		case section == "" && key == "name":
			pd.Name = toModuleName(val)
		case section == "" && key == "version":
			pd.Version = val
		case section == "" && key == "author":
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: val})
		case section == "" && key == "license":
			pd.ExtractedLicenseStatement = val
		case section == "Prereqs" || strings.HasPrefix(section, "Prereqs /"):
			scope := strings.TrimPrefix(section, "Prereqs / ")
			if scope == "Prereqs" || scope == "" {
				scope = "runtime"
			}
			dep := pkgmeta.Dependency{
				ExtractedRequirement: val,
				Scope:                strings.ToLower(scope),
				IsRuntime:            !strings.Contains(strings.ToLower(scope), "test") && !strings.Contains(strings.ToLower(scope), "build"),
				IsDirect:             true,
				IsPinned:             val != "" && val != "0",
			}
			dep.Purl, _ = purl.Build("cpan", "", toModuleName(key), "", nil, "")
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("cpan", "", pd.Name, pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

func (d DistIniDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalDistIni()
	}
	return pds[0]
}

func minimalDistIni() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "cpan", PrimaryLanguage: "Perl", DatasourceID: DistIniDatasourceID}
}

// toModuleName turns a "Foo::Bar" module name into the purl-safe
// "Foo-Bar" form (§4.2.3 "A module Foo::Bar becomes purl name Foo-Bar").
func toModuleName(s string) string {
	return strings.ReplaceAll(s, "::", "-")
}
