package cpan

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

const MakefileDatasourceID = "cpan_makefile"

// MakefileDecoder handles ExtUtils::MakeMaker's Makefile.PL.
type MakefileDecoder struct{}

func (MakefileDecoder) PackageType() string { return "cpan" }

func (MakefileDecoder) IsMatch(path string) bool { return filepath.Base(path) == "Makefile.PL" }

var writeMakefileRE = regexp.MustCompile(`WriteMakefile1?\s*\(`)

func (d MakefileDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "cpan: Makefile.PL read failed", "datasource_id", MakefileDatasourceID, "error", err)
		return []pkgmeta.PackageData{minimalMakefile()}
	}
	src := string(b)
	loc := writeMakefileRE.FindStringIndex(src)
	if loc == nil {
		slog.WarnContext(ctx, "cpan: no WriteMakefile call found", "datasource_id", MakefileDatasourceID, "path", path)
		return []pkgmeta.PackageData{minimalMakefile()}
	}
	body, ok := balancedParen(src[loc[1]-1:])
	if !ok {
		return []pkgmeta.PackageData{minimalMakefile()}
	}

	pd := minimalMakefile()
	pd.Name = toModuleName(scalarField(body, "NAME"))
	pd.Version = scalarField(body, "VERSION")
	pd.Description = scalarField(body, "ABSTRACT")
	pd.ExtractedLicenseStatement = scalarField(body, "LICENSE")
	if author := scalarField(body, "AUTHOR"); author != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: author})
	} else {
		for _, a := range listField(body, "AUTHOR") {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: a})
		}
	}

	addHash(&pd, body, "PREREQ_PM", "runtime", true, false)
	addHash(&pd, body, "BUILD_REQUIRES", "build", true, false)
	addHash(&pd, body, "TEST_REQUIRES", "test", false, true)
	addHash(&pd, body, "CONFIGURE_REQUIRES", "configure", true, false)

	if pd.Name != "" {
		pd.Purl, _ = purl.Build("cpan", "", pd.Name, pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

func (d MakefileDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalMakefile()
	}
	return pds[0]
}

func minimalMakefile() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "cpan", PrimaryLanguage: "Perl", DatasourceID: MakefileDatasourceID}
}

// balancedParen expects s to start with '(' and returns the contents up
// to the matching ')'.
func balancedParen(s string) (string, bool) {
	if len(s) == 0 || s[0] != '(' {
		return "", false
	}
	depth := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i], true
			}
		}
	}
	return "", false
}

func scalarField(body, key string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=>\s*['"]([^'"]*)['"]`)
	m := re.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

func listField(body, key string) []string {
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(key) + `\s*=>\s*\[([^\]]*)\]`)
	m := re.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	var out []string
	for _, s := range regexp.MustCompile(`['"]([^'"]*)['"]`).FindAllStringSubmatch(m[1], -1) {
		out = append(out, s[1])
	}
	return out
}

// addHash parses KEY => { 'Mod::Name' => 'version', ... } prerequisite
// hashes into Dependency entries, skipping the implicit "perl" entry.
func addHash(pd *pkgmeta.PackageData, body, key, scope string, isRuntime, isOptional bool) {
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(key) + `\s*=>\s*\{([^}]*)\}`)
	m := re.FindStringSubmatch(body)
	if m == nil {
		return
	}
	entryRE := regexp.MustCompile(`['"]([\w:]+)['"]\s*=>\s*['"]?([\d.]*)['"]?`)
	for _, e := range entryRE.FindAllStringSubmatch(m[1], -1) {
		name, version := e[1], e[2]
		if name == "perl" {
			continue
		}
		dep := pkgmeta.Dependency{
			ExtractedRequirement: version,
			Scope:                scope,
			IsRuntime:            isRuntime,
			IsOptional:           isOptional,
			IsDirect:             true,
			IsPinned:             version != "" && version != "0",
		}
		dep.Purl, _ = purl.Build("cpan", "", toModuleName(name), "", nil, "")
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}
