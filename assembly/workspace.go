// Package assembly implements the workspace assembler (C4) and the file
// attributor (C5), the two passes that run after all per-file decoding
// completes (§5 "requires a consistent global view").
package assembly

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

const cargoTomlDatasource = "cargo_toml"

// entry is the working unit C4/C5 build the final Package list from: one
// PackageData plus the path of the file it came from. uid is normally
// minted by consolidate, but the Cargo-workspace rewrite needs a member's
// final package_uid before consolidate runs (to stamp reattributed files
// with the same uid the member's eventual Package will carry), so it
// mints early and consolidate reuses it instead of minting twice.
type entry struct {
	data pkgmeta.PackageData
	path string
	uid  string
}

// Assemble runs the full C4 (Cargo workspace rewrite) + consolidation
// pass over every FileInfo's PackageData, and returns the consolidated
// Package list plus the flattened TopLevelDependency list.
//
// Assemble is idempotent (§8 #8): running it twice on its own output,
// with the PackageData already singular per file and no workspace-root
// records left over, is a no-op because step 1's discovery finds no
// further roots.
func Assemble(ctx context.Context, files []*pkgmeta.FileInfo) ([]*pkgmeta.Package, []pkgmeta.TopLevelDependency) {
	entries := collect(files)

	roots := discoverRoots(entries)
	for _, root := range roots {
		rewriteWorkspace(ctx, root, entries, files)
	}

	pkgs := consolidate(entries)
	var top []pkgmeta.TopLevelDependency
	for _, p := range pkgs {
		for _, d := range p.Dependencies {
			if d.IsDirect {
				top = append(top, pkgmeta.TopLevelDependency{Dependency: d, PackageUID: p.PackageUID})
			}
		}
	}
	return pkgs, top
}

// consolidate merges entries that share a non-empty purl into a single
// Package (the general form of the "merges datafile_paths across
// compatible PackageData" rule in §3), and mints the rest as
// single-source Packages.
func consolidate(entries []*entry) []*pkgmeta.Package {
	byPurl := map[string]*pkgmeta.Package{}
	var pkgs []*pkgmeta.Package
	for _, e := range entries {
		if e.data.PackageType == "" && e.data.DatasourceID == "" {
			continue // removed by rewriteWorkspace
		}
		uid := e.uid
		if uid == "" {
			uid = mintUID(e.data.Purl)
		}
		if e.data.Purl == "" {
			p := &pkgmeta.Package{
				PackageData:   e.data,
				PackageUID:    uid,
				DatasourceIDs: []string{e.data.DatasourceID},
			}
			p.DatafilePaths = appendUnique(p.DatafilePaths, e.path)
			pkgs = append(pkgs, p)
			continue
		}
		if existing, ok := byPurl[e.data.Purl]; ok {
			existing.DatafilePaths = appendUnique(existing.DatafilePaths, e.path)
			existing.DatasourceIDs = appendUnique(existing.DatasourceIDs, e.data.DatasourceID)
			continue
		}
		p := &pkgmeta.Package{
			PackageData:   e.data,
			PackageUID:    uid,
			DatasourceIDs: []string{e.data.DatasourceID},
		}
		p.DatafilePaths = appendUnique(p.DatafilePaths, e.path)
		byPurl[e.data.Purl] = p
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func appendUnique(s []string, v string) []string {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

func mintUID(p string) string {
	id := uuid.NewString()
	if p == "" {
		return "?uuid=" + id
	}
	return p + "?uuid=" + id
}

func collect(files []*pkgmeta.FileInfo) []*entry {
	var out []*entry
	for _, f := range files {
		for i := range f.PackageData {
			out = append(out, &entry{data: f.PackageData[i], path: f.Path})
		}
	}
	return out
}

// workspaceRoot is a discovered Cargo workspace root (§4.3 step 1).
type workspaceRoot struct {
	entry   *entry
	dir     string
	members []string // raw [workspace.members] patterns
}

func discoverRoots(entries []*entry) []workspaceRoot {
	var roots []workspaceRoot
	for _, e := range entries {
		if filepath.Base(e.path) != "Cargo.toml" {
			continue
		}
		if e.data.DatasourceID != cargoTomlDatasource {
			continue
		}
		ws, _ := e.data.ExtraData["workspace"].(map[string]any)
		if ws == nil {
			continue
		}
		rawMembers, _ := ws["members"].([]any)
		if len(rawMembers) == 0 {
			continue
		}
		members := make([]string, 0, len(rawMembers))
		for _, m := range rawMembers {
			if s, ok := m.(string); ok && s != "" {
				members = append(members, s)
			}
		}
		if len(members) == 0 {
			continue
		}
		roots = append(roots, workspaceRoot{
			entry:   e,
			dir:     filepath.Dir(e.path),
			members: members,
		})
	}
	return roots
}

// rewriteWorkspace implements §4.3 step 2: resolve members, remove the
// raw records, rebuild each member with inheritance resolved, and
// reattribute files under the workspace directory.
func rewriteWorkspace(ctx context.Context, root workspaceRoot, entries []*entry, files []*pkgmeta.FileInfo) {
	members := resolveMembers(root, entries)
	if len(members) == 0 {
		slog.WarnContext(ctx, "workspace root resolved zero members", "path", root.entry.path)
		return
	}

	rootPkgTable, _ := root.entry.data.ExtraData["workspace.package"].(map[string]any)
	depTable, _ := root.entry.data.ExtraData["workspace.dependencies"].(map[string]any)

	// Remove the root record.
	root.entry.data = pkgmeta.PackageData{}

	for _, m := range members {
		m.entry.data = rebuildMember(m.entry.data, rootPkgTable, depTable)
		m.entry.uid = mintUID(m.entry.data.Purl)
	}

	reattributeFiles(root, members, files)
}

type member struct {
	entry *entry
}

// resolveMembers implements §4.3 step 2a.
func resolveMembers(root workspaceRoot, entries []*entry) []member {
	var out []member
	for _, e := range entries {
		if e == root.entry {
			continue
		}
		if filepath.Base(e.path) != "Cargo.toml" {
			continue
		}
		if e.data.DatasourceID != cargoTomlDatasource || e.data.Purl == "" {
			continue
		}
		if !strings.HasPrefix(e.path, root.dir+string(filepath.Separator)) && e.path != root.dir {
			continue
		}
		rel, err := filepath.Rel(root.dir, filepath.Dir(e.path))
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		for _, pat := range root.members {
			if memberMatches(pat, rel) {
				out = append(out, member{entry: e})
				break
			}
		}
	}
	return out
}

func memberMatches(pattern, rel string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == rel
	}
	ok, err := path.Match(pattern, rel)
	return err == nil && ok
}

// rebuildMember implements §4.3 step 2c: resolve the "workspace" sentinel
// against the root's [workspace.package] and [workspace.dependencies]
// tables, then recompute purl and repository_download_url.
func rebuildMember(pd pkgmeta.PackageData, rootPkgTable, depTable map[string]any) pkgmeta.PackageData {
	raw, _ := pd.ExtraData["workspace_inherit"].(map[string]bool)

	if raw["version"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["version"].(string); ok {
			pd.Version = v
		}
	}
	if raw["license"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["license"].(string); ok {
			pd.ExtractedLicenseStatement = v
		}
	}
	if raw["homepage"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["homepage"].(string); ok {
			pd.HomepageURL = v
		}
	}
	if raw["repository"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["repository"].(string); ok {
			pd.VCSURL = v
		}
	}
	if raw["categories"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["categories"].([]any); ok {
			for _, c := range v {
				if s, ok := c.(string); ok {
					pd.Keywords = append(pd.Keywords, s)
				}
			}
		}
	}
	if raw["edition"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["edition"].(string); ok {
			setExtra(&pd, "rust_edition", v)
		}
	}
	if raw["rust-version"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["rust-version"].(string); ok {
			setExtra(&pd, "rust_version", v)
		}
	}
	if raw["authors"] && rootPkgTable != nil {
		if v, ok := rootPkgTable["authors"].([]any); ok {
			for _, a := range v {
				if s, ok := a.(string); ok {
					pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleAuthor, Name: s})
				}
			}
		}
	}

	for i := range pd.Dependencies {
		dep := &pd.Dependencies[i]
		isWs, _ := dep.ExtraData["workspace"].(bool)
		if !isWs || depTable == nil {
			continue
		}
		name, _ := dep.ExtraData["name"].(string)
		switch v := depTable[name].(type) {
		case string:
			dep.ExtractedRequirement = v
		case map[string]any:
			if ver, ok := v["version"].(string); ok {
				dep.ExtractedRequirement = ver
			}
		}
	}

	if pd.Name != "" && pd.Version != "" {
		pd.Purl, _ = purl.Build("cargo", pd.Namespace, pd.Name, pd.Version, pd.Qualifiers, pd.Subpath)
		pd.RepositoryDownloadURL = fmt.Sprintf("https://crates.io/api/v1/crates/%s/%s/download", pd.Name, pd.Version)
	}
	return pd
}

func setExtra(pd *pkgmeta.PackageData, k string, v any) {
	if pd.ExtraData == nil {
		pd.ExtraData = map[string]any{}
	}
	pd.ExtraData[k] = v
}

// reattributeFiles implements §4.3 step 2d.
func reattributeFiles(root workspaceRoot, members []member, files []*pkgmeta.FileInfo) {
	memberDirs := make(map[string]string, len(members)) // dir -> uid
	var allUIDs []string
	for _, m := range members {
		dir := filepath.Dir(m.entry.path)
		memberDirs[dir] = m.entry.uid
		allUIDs = append(allUIDs, m.entry.uid)
	}

	prefix := root.dir + string(filepath.Separator)
	for _, f := range files {
		if f.Path != root.dir && !strings.HasPrefix(f.Path, prefix) {
			continue
		}
		rel, err := filepath.Rel(root.dir, f.Path)
		if err != nil {
			continue
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) > 0 && parts[0] == "target" {
			continue // build output, left unattributed
		}
		if owner, ok := longestPrefixOwner(f.Path, memberDirs); ok {
			f.ForPackages = append(f.ForPackages, owner)
			continue
		}
		f.ForPackages = append(f.ForPackages, allUIDs...)
	}
}

func longestPrefixOwner(path string, dirs map[string]string) (string, bool) {
	var best string
	var bestLen = -1
	for dir, uid := range dirs {
		if dir == path || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			if len(dir) > bestLen {
				bestLen = len(dir)
				best = uid
			}
		}
	}
	return best, bestLen >= 0
}
