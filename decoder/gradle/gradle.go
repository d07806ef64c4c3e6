// Package gradle decodes Gradle's build.gradle / build.gradle.kts via a
// hand-written lexer over the first top-level dependencies { } block
// (§4.2.3). Subsequent dependencies blocks in the same file are ignored,
// matching the source behavior flagged in spec.md §9.
package gradle

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/pin"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "build_gradle"

type Decoder struct{}

func (Decoder) PackageType() string { return "maven" }

func (Decoder) IsMatch(path string) bool {
	base := filepath.Base(path)
	return base == "build.gradle" || base == "build.gradle.kts"
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "maven", PrimaryLanguage: "Java", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "gradle: read failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	src := stripComments(string(b))
	block, ok := firstDependenciesBlock(src)
	pd := minimal()
	if !ok {
		return pd
	}
	topLevel := 0
	for i := 0; ; i++ {
		n := strings.Index(src[i:], "dependencies")
		if n < 0 {
			break
		}
		i += n
		rest := strings.TrimLeft(src[i+len("dependencies"):], " \t\r\n")
		if strings.HasPrefix(rest, "{") && strings.Count(src[:i], "{") == strings.Count(src[:i], "}") {
			topLevel++
		}
	}
	if topLevel > 1 {
		slog.WarnContext(ctx, "gradle: dependencies blocks after the first are ignored", "datasource_id", DatasourceID, "path", path, "blocks", topLevel)
	}
	for _, stmt := range splitStatements(block) {
		if dep, ok := parseStatement(stmt); ok {
			pd.Dependencies = append(pd.Dependencies, dep)
		}
	}
	if len(pd.Dependencies) == 0 {
		slog.WarnContext(ctx, "gradle: dependencies block had no recognized entries", "datasource_id", DatasourceID, "path", path)
	}
	return pd
}

// stripComments removes // and /* */ comments while preserving
// newlines (needed for statement splitting) and string contents.
func stripComments(src string) string {
	var sb strings.Builder
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == '\'' || c == '"':
			quote := c
			j := i + 1
			for j < n && src[j] != quote {
				if src[j] == '\\' && j+1 < n {
					j += 2
					continue
				}
				j++
			}
			if j < n {
				j++
			}
			sb.WriteString(src[i:j])
			i = j
		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				if src[i] == '\n' {
					sb.WriteByte('\n')
				}
				i++
			}
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// firstDependenciesBlock finds the first top-level "dependencies {"
// block by brace counting and returns its contents.
func firstDependenciesBlock(src string) (string, bool) {
	idx := strings.Index(src, "dependencies")
	for idx >= 0 {
		rest := strings.TrimLeft(src[idx+len("dependencies"):], " \t\r\n")
		if strings.HasPrefix(rest, "{") && strings.Count(src[:idx], "{") == strings.Count(src[:idx], "}") {
			start := len(src) - len(rest) + 1
			depth := 1
			j := start
			for j < len(src) && depth > 0 {
				switch src[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				j++
			}
			return src[start : j-1], true
		}
		next := strings.Index(src[idx+1:], "dependencies")
		if next < 0 {
			break
		}
		idx = idx + 1 + next
	}
	return "", false
}

// splitStatements splits a block body into individual statements on
// newlines and semicolons, dropping blanks.
func splitStatements(block string) []string {
	replaced := strings.ReplaceAll(block, ";", "\n")
	var out []string
	for _, line := range strings.Split(replaced, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func parseStatement(stmt string) (pkgmeta.Dependency, bool) {
	toks := tokenize(stmt)
	if len(toks) < 2 || toks[0].kind != tokIdent {
		return pkgmeta.Dependency{}, false
	}
	scope := toks[0].text
	rest := toks[1:]

	isTest := strings.Contains(strings.ToLower(scope), "test")
	base := pkgmeta.Dependency{Scope: scope, IsDirect: true, IsRuntime: !isTest, IsOptional: isTest}

	switch {
	case len(rest) == 1 && rest[0].kind == tokStr:
		return coordDep(base, rest[0].text)

	case rest[0].kind == tokLParen && len(rest) >= 2 && rest[1].kind == tokStr && lastNonSkip(rest) == tokRParen:
		return coordDep(base, rest[1].text)

	case rest[0].kind == tokLParen && len(rest) >= 4 && rest[1].kind == tokIdent && rest[2].kind == tokLParen && rest[3].kind == tokStr:
		base.Scope = rest[1].text
		return coordDep(base, rest[3].text)

	case rest[0].kind == tokIdent && rest[0].text == "project":
		return projectDep(base, rest[1:])

	case rest[0].kind == tokLParen && len(rest) >= 2 && rest[1].kind == tokIdent && rest[1].text == "project":
		return projectDep(base, rest[2:])

	case rest[0].kind == tokLBracket || (rest[0].kind == tokLParen && len(rest) > 1 && rest[1].kind == tokLBracket):
		return mapListDep(base, rest)

	case isKeyValueForm(rest):
		return keyValueDep(base, rest)

	case rest[0].kind == tokIdent:
		return variableRefDep(base, rest)
	}
	return pkgmeta.Dependency{}, false
}

func lastNonSkip(toks []token) tokenKind {
	if len(toks) == 0 {
		return -1
	}
	return toks[len(toks)-1].kind
}

func isKeyValueForm(toks []token) bool {
	start := 0
	if len(toks) > 0 && toks[0].kind == tokLParen {
		start = 1
	}
	return start+1 < len(toks) && toks[start].kind == tokIdent && toks[start+1].kind == tokColon
}

// coordDep handles "group:name:version" with 2, 3, or 4 colon segments.
func coordDep(base pkgmeta.Dependency, coord string) (pkgmeta.Dependency, bool) {
	parts := strings.Split(coord, ":")
	if len(parts) < 2 {
		return pkgmeta.Dependency{}, false
	}
	group, name := parts[0], parts[1]
	var version string
	if len(parts) >= 3 {
		version = parts[2]
	}
	return finishDep(base, group, name, version)
}

func finishDep(base pkgmeta.Dependency, group, name, version string) (pkgmeta.Dependency, bool) {
	if name == "" {
		return pkgmeta.Dependency{}, false
	}
	qualVersion := version
	if strings.Contains(version, "$") {
		qualVersion = url.QueryEscape(version)
	}
	base.Purl, _ = purl.Build("maven", group, name, qualVersion, nil, "")
	base.ExtractedRequirement = version
	base.IsPinned = pin.MavenPinned(version)
	return base, true
}

// projectDep handles "project(':path:module')".
func projectDep(base pkgmeta.Dependency, rest []token) (pkgmeta.Dependency, bool) {
	for _, t := range rest {
		if t.kind == tokStr {
			segs := strings.Split(strings.Trim(t.text, ":"), ":")
			name := segs[len(segs)-1]
			base.Scope = "project"
			return finishDep(base, "", name, "")
		}
	}
	return pkgmeta.Dependency{}, false
}

// mapListDep handles "scope([group: 'g', name: 'n', version: 'v'], …)":
// a bracketed map list; each map element emits a dependency with empty
// outer scope.
func mapListDep(base pkgmeta.Dependency, toks []token) (pkgmeta.Dependency, bool) {
	kv := map[string]string{}
	var key string
	for _, t := range toks {
		switch t.kind {
		case tokIdent:
			if key == "" {
				key = t.text
			}
		case tokStr:
			if key != "" {
				kv[key] = t.text
				key = ""
			}
		case tokColon:
		case tokComma:
			key = ""
		}
	}
	if kv["name"] == "" {
		return pkgmeta.Dependency{}, false
	}
	base.Scope = ""
	return finishDep(base, kv["group"], kv["name"], kv["version"])
}

// keyValueDep handles "scope group: 'g', name: 'n', version: 'v'".
func keyValueDep(base pkgmeta.Dependency, toks []token) (pkgmeta.Dependency, bool) {
	kv := map[string]string{}
	var key string
	for _, t := range toks {
		switch t.kind {
		case tokIdent:
			if key == "" {
				key = t.text
			}
		case tokStr:
			if key != "" {
				kv[key] = t.text
				key = ""
			}
		case tokComma:
			key = ""
		}
	}
	return finishDep(base, kv["group"], kv["name"], kv["version"])
}

// variableRefDep handles "scope x.y.foo": name is the last dotted
// segment, no version. References beginning with "dependencies." are
// ignored.
func variableRefDep(base pkgmeta.Dependency, toks []token) (pkgmeta.Dependency, bool) {
	var segs []string
	for _, t := range toks {
		if t.kind == tokIdent {
			segs = append(segs, t.text)
		} else if t.kind != tokDot {
			break
		}
	}
	if len(segs) == 0 {
		return pkgmeta.Dependency{}, false
	}
	if segs[0] == "dependencies" {
		return pkgmeta.Dependency{}, false
	}
	name := segs[len(segs)-1]
	return finishDep(base, "", name, "")
}
