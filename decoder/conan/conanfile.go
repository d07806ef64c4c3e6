// Package conan decodes Conan C/C++ package manifests: conanfile.py
// (a restricted Python-class scan, no Python interpreter involved),
// conandata.yml, and conan.lock (§4.2.2, §4.2.5).
package conan

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

const ConanfileDatasourceID = "conanfile"

type ConanfileDecoder struct{}

func (ConanfileDecoder) PackageType() string { return "conan" }

func (ConanfileDecoder) IsMatch(path string) bool { return filepath.Base(path) == "conanfile.py" }

var (
	classRE     = regexp.MustCompile(`^class\s+(\w+)\s*\(([^)]*)\)\s*:`)
	attrRE      = regexp.MustCompile(`^\s+(name|version|description|homepage|url|license|topics|requires)\s*=\s*(.+?)\s*$`)
	requiresRE  = regexp.MustCompile(`self\.requires\s*\(\s*["']([^"']+)["']`)
	listItemsRE = regexp.MustCompile(`["']([^"']+)["']`)
)

// ExtractPackages locates the first class deriving from ConanFile,
// reads its string/list attributes, and additionally scans every line of
// that class body for self.requires(...) calls (which may appear in any
// method, not just attribute assignments). Lines outside the class are
// not scanned.
func (d ConanfileDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "conan: conanfile.py read failed", "datasource_id", ConanfileDatasourceID, "error", err)
		return []pkgmeta.PackageData{minimalConanfile()}
	}
	defer f.Close()

	pd := minimalConanfile()
	sc := bufio.NewScanner(f)
	inClass := false
	classIndent := -1
	var requiresAttr []string
	for sc.Scan() {
		line := sc.Text()
		if !inClass {
			if m := classRE.FindStringSubmatch(line); m != nil && strings.Contains(m[2], "ConanFile") {
				inClass = true
				classIndent = indentOf(line)
			}
			continue
		}
		if strings.TrimSpace(line) != "" && indentOf(line) <= classIndent {
			break // class body ended
		}
		if m := attrRE.FindStringSubmatch(line); m != nil {
			applyAttr(&pd, m[1], m[2], &requiresAttr)
		}
		for _, m := range requiresRE.FindAllStringSubmatch(line, -1) {
			requiresAttr = append(requiresAttr, m[1])
		}
	}
	for _, req := range requiresAttr {
		pd.Dependencies = append(pd.Dependencies, buildRequireDep(req))
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("conan", "", pd.Name, pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

func applyAttr(pd *pkgmeta.PackageData, key, rawVal string, requiresAttr *[]string) {
	val := strings.TrimSuffix(strings.TrimSpace(rawVal), ",")
	switch key {
	case "name":
		pd.Name = unquote(val)
	case "version":
		pd.Version = unquote(val)
	case "description":
		pd.Description = unquote(val)
	case "homepage":
		pd.HomepageURL = unquote(val)
	case "url":
		pd.DownloadURL = unquote(val)
	case "license":
		if strings.HasPrefix(val, "(") || strings.HasPrefix(val, "[") {
			pd.ExtractedLicenseStatement = strings.Join(listItems(val), ", ")
		} else {
			pd.ExtractedLicenseStatement = unquote(val)
		}
	case "topics":
		pd.Keywords = append(pd.Keywords, listItems(val)...)
	case "requires":
		if strings.HasPrefix(val, "(") || strings.HasPrefix(val, "[") {
			*requiresAttr = append(*requiresAttr, listItems(val)...)
		} else {
			*requiresAttr = append(*requiresAttr, unquote(val))
		}
	}
}

func buildRequireDep(req string) pkgmeta.Dependency {
	dep := pkgmeta.Dependency{
		ExtractedRequirement: req,
		Scope:                "install",
		IsRuntime:            true,
		IsDirect:             true,
		IsPinned:             !strings.ContainsAny(req, "[<>"),
	}
	name, version, _ := strings.Cut(req, "/")
	dep.Purl, _ = purl.Build("conan", "", name, version, nil, "")
	return dep
}

func listItems(s string) []string {
	var out []string
	for _, m := range listItemsRE.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func indentOf(line string) int {
	n := 0
	for _, c := range line {
		if c == ' ' {
			n++
		} else if c == '\t' {
			n += 8
		} else {
			break
		}
	}
	return n
}

func (d ConanfileDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalConanfile()
	}
	return pds[0]
}

func minimalConanfile() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "conan", DatasourceID: ConanfileDatasourceID}
}
