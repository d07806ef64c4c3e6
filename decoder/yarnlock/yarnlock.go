// Package yarnlock decodes Yarn classic (v1) yarn.lock: key-value
// blocks separated by blank lines, where the key is one or more
// comma-separated "name@range" requirements and the value carries the
// resolved version (§4.2.5). Yarn Berry (v2+) uses a YAML-shaped
// yarn.lock instead; that format is handled by the sibling yarnberry
// package, discriminated by the presence of a "__metadata:" block.
package yarnlock

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

const DatasourceID = "yarn_lock"

type Decoder struct{}

func (Decoder) PackageType() string { return "npm" }

func (Decoder) IsMatch(path string) bool {
	if filepath.Base(path) != "yarn.lock" {
		return false
	}
	return !isBerry(path)
}

// isBerry sniffs the first non-comment line for Yarn Berry's
// "__metadata:" marker, the format discriminator this decoder defers to
// its sibling package for.
func isBerry(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line == "__metadata:"
	}
	return false
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "yarnlock: read failed", "datasource_id", DatasourceID, "error", err)
		return []pkgmeta.PackageData{minimal()}
	}
	defer f.Close()

	pd := minimal()
	blocks := splitBlocks(f)
	for _, blk := range blocks {
		name, version, resolved, integrity, ok := parseBlock(blk)
		if !ok {
			continue
		}
		dep := pkgmeta.Dependency{
			Scope:     "dependencies",
			IsRuntime: true,
			IsPinned:  true,
		}
		ns, nm := splitScope(name)
		dep.Purl, _ = purl.Build("npm", ns, nm, version, nil, "")
		if resolved != "" || integrity != "" {
			dep.ExtraData = map[string]any{}
			if resolved != "" {
				dep.ExtraData["resolved"] = resolved
			}
			if integrity != "" {
				dep.ExtraData["integrity"] = integrity
			}
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "npm", PrimaryLanguage: "JavaScript", DatasourceID: DatasourceID}
}

// splitBlocks splits the file into blank-line-separated blocks, skipping
// leading comment lines.
func splitBlocks(f *os.File) [][]string {
	var blocks [][]string
	var cur []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// parseBlock extracts (name, version, resolved, integrity) from one
// block. The header line(s) are the comma-joined "name@range" key; the
// indented body carries version/resolved/integrity fields.
func parseBlock(lines []string) (name, version, resolved, integrity string, ok bool) {
	if len(lines) == 0 {
		return "", "", "", "", false
	}
	header := strings.TrimSuffix(strings.TrimSpace(lines[0]), ":")
	firstSpec := strings.TrimSpace(strings.Split(header, ",")[0])
	firstSpec = strings.Trim(firstSpec, `"`)
	name, _ = splitNameRange(firstSpec)

	for _, l := range lines[1:] {
		l = strings.TrimSpace(l)
		switch {
		case strings.HasPrefix(l, "version"):
			version = fieldValue(l)
		case strings.HasPrefix(l, "resolved"):
			resolved = fieldValue(l)
		case strings.HasPrefix(l, "integrity"):
			integrity = fieldValue(l)
		}
	}
	return name, version, resolved, integrity, name != "" && version != ""
}

func fieldValue(line string) string {
	_, v, found := strings.Cut(line, " ")
	if !found {
		return ""
	}
	return strings.Trim(strings.TrimSpace(v), `"`)
}

// splitNameRange splits "name@range", handling a leading "@" scope.
func splitNameRange(spec string) (name, rng string) {
	rest := spec
	scoped := strings.HasPrefix(rest, "@")
	if scoped {
		rest = rest[1:]
	}
	i := strings.LastIndexByte(rest, '@')
	if i < 0 {
		if scoped {
			return "@" + rest, ""
		}
		return rest, ""
	}
	name, rng = rest[:i], rest[i+1:]
	if scoped {
		name = "@" + name
	}
	return name, rng
}

func splitScope(name string) (namespace, bare string) {
	if !strings.HasPrefix(name, "@") {
		return "", name
	}
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
