// Package opam decodes OPAM package description files: a custom
// key/value/array format with multi-line triple-quoted strings,
// bracketed dependency lists carrying version-constraint filters, and
// a checksum array (§4.2.3).
package opam

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "opam_file"

type Decoder struct{}

func (Decoder) PackageType() string { return "opam" }

func (Decoder) IsMatch(path string) bool {
	return strings.HasSuffix(path, ".opam") || filepath.Base(path) == "opam"
}

var (
	tripleQuoteRE = regexp.MustCompile(`(?s)"""(.*?)"""`)
	scalarRE      = regexp.MustCompile(`^\s*([\w-]+)\s*:\s*"([^"]*)"\s*$`)
	listStartRE   = regexp.MustCompile(`^\s*(depends|conflicts)\s*:\s*\[`)
	checksumStart = regexp.MustCompile(`^\s*checksum\s*:\s*\[`)
	depEntryRE    = regexp.MustCompile(`"([^"]+)"\s*(?:\{([^}]*)\})?`)
	versionOpRE   = regexp.MustCompile(`(>=|<=|>|<|=)\s*"([^"]+)"`)
	algoHashRE    = regexp.MustCompile(`"(sha1|sha256|sha512|md5)=([0-9a-fA-F]+)"`)
)

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal()}
	}
	src := stripTripleQuoted(string(b))
	pd := minimal()
	pd.Name = filepath.Base(strings.TrimSuffix(path, ".opam"))

	lines := strings.Split(src, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if m := scalarRE.FindStringSubmatch(line); m != nil {
			switch m[1] {
			case "name":
				pd.Name = m[2]
			case "version":
				pd.Version = m[2]
			case "synopsis", "description":
				if pd.Description == "" {
					pd.Description = m[2]
				}
			case "homepage":
				pd.HomepageURL = m[2]
			case "license":
				pd.ExtractedLicenseStatement = m[2]
			case "maintainer", "authors":
				pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: m[2]})
			}
			continue
		}
		if listStartRE.MatchString(line) {
			block, consumed := collectBracketed(lines, i)
			i += consumed
			for _, e := range depEntryRE.FindAllStringSubmatch(block, -1) {
				name, constraints := e[1], e[2]
				dep := pkgmeta.Dependency{
					Scope:     "dependencies",
					IsRuntime: true,
					IsDirect:  true,
				}
				if vm := versionOpRE.FindStringSubmatch(constraints); vm != nil {
					dep.ExtractedRequirement = vm[1] + vm[2]
					dep.IsPinned = vm[1] == "="
				}
				dep.Purl, _ = purl.Build("opam", "", name, "", nil, "")
				pd.Dependencies = append(pd.Dependencies, dep)
			}
			continue
		}
		if checksumStart.MatchString(line) {
			block, consumed := collectBracketed(lines, i)
			i += consumed
			for _, h := range algoHashRE.FindAllStringSubmatch(block, -1) {
				switch h[1] {
				case "sha1":
					pd.Hashes.SHA1 = h[2]
				case "sha256":
					pd.Hashes.SHA256 = h[2]
				case "sha512":
					pd.Hashes.SHA512 = h[2]
				case "md5":
					pd.Hashes.MD5 = h[2]
				}
			}
		}
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("opam", "", pd.Name, pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

// stripTripleQuoted collapses """...""" multi-line strings to a single
// line so the scalar/list line scanner never splits mid-string.
func stripTripleQuoted(s string) string {
	return tripleQuoteRE.ReplaceAllStringFunc(s, func(m string) string {
		inner := tripleQuoteRE.FindStringSubmatch(m)[1]
		return `"` + strings.Join(strings.Fields(inner), " ") + `"`
	})
}

// collectBracketed gathers lines from lines[start] (which opens a `[`)
// until the matching `]`, returning the joined block and the extra
// line count consumed beyond start.
func collectBracketed(lines []string, start int) (string, int) {
	depth := strings.Count(lines[start], "[") - strings.Count(lines[start], "]")
	block := lines[start]
	i := start
	for depth > 0 && i+1 < len(lines) {
		i++
		block += "\n" + lines[i]
		depth += strings.Count(lines[i], "[") - strings.Count(lines[i], "]")
	}
	return block, i - start
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "opam", DatasourceID: DatasourceID}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}
