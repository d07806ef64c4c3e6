// Package pnpmlock decodes pnpm-lock.yaml across lockfileVersion 5.x,
// 6.x, and 9.x (§4.2.5), including the v9 dev-only reachability BFS.
package pnpmlock

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/internal/pin"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "pnpm_lock_yaml"

type Decoder struct{}

func (Decoder) PackageType() string { return "npm" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "pnpm-lock.yaml" }

type importer struct {
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"devDependencies"`
}

type snapshot struct {
	Dependencies         map[string]string `yaml:"dependencies"`
	OptionalDependencies map[string]string `yaml:"optionalDependencies"`
}

type packageEntry struct {
	Resolution struct {
		Integrity string `yaml:"integrity"`
	} `yaml:"resolution"`
	Dev bool `yaml:"dev"`
}

type document struct {
	LockfileVersion any                     `yaml:"lockfileVersion"`
	Importers       map[string]importer     `yaml:"importers"`
	Packages        map[string]packageEntry `yaml:"packages"`
	Snapshots       map[string]snapshot     `yaml:"snapshots"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal()}
	}
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		slog.WarnContext(ctx, "pnpmlock: parse failed", "datasource_id", DatasourceID, "error", err)
		return []pkgmeta.PackageData{minimal()}
	}
	major := lockfileMajor(doc.LockfileVersion)

	pd := minimal()
	pd.ExtraData = map[string]any{"lockfile_version": major}

	var devOnly map[string]bool
	if major == 9 {
		devOnly = computeDevOnlyV9(doc)
	}

	switch major {
	case 9:
		// doc.Packages is the full set of resolved package@version keys;
		// doc.Snapshots shares most of those keys but exists solely to
		// describe each package's own dependency edges for the dev-only
		// reachability walk above. Emitting from both would double up any
		// key present in both maps, which in practice is nearly every one.
		for key := range doc.Packages {
			name, version := peelV9(key)
			if name == "" {
				continue
			}
			emit(&pd, name, version, "", devOnly[key])
		}
	case 6:
		for key, p := range doc.Packages {
			name, version := peelV6(key)
			if name == "" {
				continue
			}
			emit(&pd, name, version, p.Resolution.Integrity, p.Dev)
		}
	default: // v5 and anything unrecognized falls back to the v5 shape
		for key, p := range doc.Packages {
			name, version := peelV5(key)
			if name == "" {
				continue
			}
			emit(&pd, name, version, p.Resolution.Integrity, p.Dev)
		}
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

func lockfileMajor(v any) int {
	s := ""
	switch x := v.(type) {
	case string:
		s = x
	case float64:
		if x >= 9 {
			return 9
		} else if x >= 6 {
			return 6
		}
		return 5
	}
	switch {
	case strings.HasPrefix(s, "9"):
		return 9
	case strings.HasPrefix(s, "6"):
		return 6
	default:
		return 5
	}
}

func emit(pd *pkgmeta.PackageData, name, version, integrity string, dev bool) {
	dep := pkgmeta.Dependency{
		Scope:     "dependencies",
		IsRuntime: !dev,
		IsPinned:  true,
		IsDirect:  false,
	}
	if dev {
		dep.Scope = "dev"
		dep.IsOptional = true
	}
	ns, nm := splitScope(name)
	dep.Purl, _ = purl.Build("npm", ns, nm, version, nil, "")
	if integrity != "" {
		applySRI(&dep, integrity)
	}
	pd.Dependencies = append(pd.Dependencies, dep)
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

// applySRI translates an SRI "<algo>-<base64>" integrity string into the
// ResolvedPackage hash fields (§6.5, SRI glossary entry). Each
// space-separated algo entry is handled independently.
func applySRI(dep *pkgmeta.Dependency, integrity string) {
	rp := &pkgmeta.ResolvedPackage{}
	for _, h := range strings.Fields(integrity) {
		algo, _, ok := strings.Cut(h, "-")
		if !ok {
			continue
		}
		switch algo {
		case "sha1":
			rp.Hashes.SHA1 = h
		case "sha256":
			rp.Hashes.SHA256 = h
		case "sha512":
			rp.Hashes.SHA512 = h
		case "md5":
			rp.Hashes.MD5 = h
		default:
			continue
		}
		dep.ResolvedPackage = rp
	}
}

// peelV5 strips a "/[@ns/]name/version[_peerhash]" key down to
// (name, version), per §4.2.5's v5 rule: find the first underscore whose
// left side is semver-shaped.
func peelV5(key string) (name, version string) {
	key = strings.TrimPrefix(key, "/")
	parts := strings.Split(key, "/")
	if len(parts) < 2 {
		return "", ""
	}
	var nameParts []string
	if strings.HasPrefix(parts[0], "@") {
		nameParts = parts[:2]
		parts = parts[2:]
	} else {
		nameParts = parts[:1]
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return "", ""
	}
	ver := parts[0]
	for i := 0; i < len(ver); i++ {
		if ver[i] == '_' && pin.LooksSemver(ver[:i]) {
			ver = ver[:i]
			break
		}
	}
	return strings.Join(nameParts, "/"), ver
}

// peelV6 strips the "(peerexpr)" suffix from a "[@ns/]name@version(peer)"
// key.
func peelV6(key string) (name, version string) {
	if i := strings.IndexByte(key, '('); i >= 0 {
		key = key[:i]
	}
	return splitNameAtVersion(key)
}

// peelV9 handles the plain "[@ns/]name@version" shape.
func peelV9(key string) (name, version string) {
	return splitNameAtVersion(key)
}

func splitNameAtVersion(key string) (name, version string) {
	rest := key
	scoped := strings.HasPrefix(rest, "@")
	if scoped {
		rest = rest[1:]
	}
	i := strings.LastIndexByte(rest, '@')
	if i < 0 {
		return "", ""
	}
	name, version = rest[:i], rest[i+1:]
	if scoped {
		name = "@" + name
	}
	return name, version
}

// computeDevOnlyV9 implements the §4.2.5 v9 BFS: seed with
// importers[*].dependencies (prod) and importers[*].devDependencies
// (dev), follow snapshots[*].dependencies/optionalDependencies, and mark
// every snapshot unreached from a prod root as dev-only.
func computeDevOnlyV9(doc document) map[string]bool {
	prodSeed, devSeed := map[string]bool{}, map[string]bool{}
	for _, imp := range doc.Importers {
		for n, v := range imp.Dependencies {
			if key, ok := snapshotKeyFor(doc, n, v); ok {
				prodSeed[key] = true
			}
		}
		for n, v := range imp.DevDependencies {
			if key, ok := snapshotKeyFor(doc, n, v); ok {
				devSeed[key] = true
			}
		}
	}
	prodReachable := bfs(doc, prodSeed)
	allKeys := map[string]bool{}
	for k := range doc.Snapshots {
		allKeys[k] = true
	}
	for k := range doc.Packages {
		allKeys[k] = true
	}
	devOnly := map[string]bool{}
	for k := range allKeys {
		if !prodReachable[k] {
			devOnly[k] = true
		}
	}
	return devOnly
}

// importerSpecVersion extracts the resolved version out of an
// importers[*].dependencies/devDependencies value. In lockfileVersion 9
// that value is an object, `{specifier, version}`, not a bare version
// string as it is at the snapshot level; a plain string is also
// accepted in case a future or pre-9 shape ever supplies one directly.
func importerSpecVersion(spec any) (string, bool) {
	switch v := spec.(type) {
	case string:
		return v, true
	case map[string]any:
		s, ok := v["version"].(string)
		return s, ok
	default:
		return "", false
	}
}

// truncatePeerSuffix drops a trailing "(peerdep[, peerdep...])"
// annotation from a v9 version string, e.g. "8.28.2(vue@2.7.16)" ->
// "8.28.2". Truncating at the first "(" (rather than trimming a single
// trailing ")") is required because the peer annotation can itself
// contain nested parentheses.
func truncatePeerSuffix(v string) string {
	if i := strings.IndexByte(v, '('); i >= 0 {
		return v[:i]
	}
	return v
}

func snapshotKeyFor(doc document, name string, spec any) (string, bool) {
	v, ok := importerSpecVersion(spec)
	if !ok {
		return "", false
	}
	v = truncatePeerSuffix(v)
	key := name + "@" + v
	if _, ok := doc.Snapshots[key]; ok {
		return key, true
	}
	// Fall back to any snapshot key with this name, for the rare case
	// the exact version string doesn't line up byte-for-byte with the
	// snapshot key (e.g. a local-file or alias specifier).
	for k := range doc.Snapshots {
		if n, _ := peelV9(k); n == name {
			return k, true
		}
	}
	return "", false
}

func bfs(doc document, seed map[string]bool) map[string]bool {
	visited := map[string]bool{}
	queue := make([]string, 0, len(seed))
	for k := range seed {
		visited[k] = true
		queue = append(queue, k)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		snap, ok := doc.Snapshots[cur]
		if !ok {
			continue
		}
		next := func(deps map[string]string) {
			for n, v := range deps {
				v = truncatePeerSuffix(v)
				key := n + "@" + v
				if _, ok := doc.Snapshots[key]; !ok {
					continue
				}
				if !visited[key] {
					visited[key] = true
					queue = append(queue, key)
				}
			}
		}
		next(snap.Dependencies)
		next(snap.OptionalDependencies)
	}
	return visited
}
