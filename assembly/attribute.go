package assembly

import (
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
)

// Excluded directory names (§6.5), checked by path component.
var excludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"target":       true,
	"vendor":       true,
	"venv":         true,
	".venv":        true,
	"__pycache__":  true,
}

// Attribute is the file attributor (C5). It fills FileInfo.ForPackages
// for every file whose ForPackages is still empty, by longest-prefix
// directory match against each Package's DatafilePaths (§4.4).
//
// Attribute must run strictly after [Assemble] (§5). It is idempotent
// (§8 #9): files already carrying a ForPackages entry (set either by
// Assemble's Cargo-workspace reattribution or by an earlier Attribute
// call) are left untouched.
func Attribute(files []*pkgmeta.FileInfo, pkgs []*pkgmeta.Package) {
	dirs := packageDirs(pkgs)
	for _, f := range files {
		if len(f.ForPackages) > 0 {
			continue
		}
		if crossesExcluded(f.Path) {
			continue
		}
		if uid, ok := longestPrefixPackage(f.Path, dirs); ok {
			f.ForPackages = append(f.ForPackages, uid)
		}
	}
}

// packageDirs maps every directory that owns at least one datafile to
// the owning package's uid. A directory governed by more than one
// package (ties, §4.4 "broken by first-seen order") keeps the
// first-registered uid.
func packageDirs(pkgs []*pkgmeta.Package) map[string]string {
	dirs := map[string]string{}
	for _, p := range pkgs {
		for _, f := range p.DatafilePaths {
			dir := filepath.Dir(f)
			if _, seen := dirs[dir]; !seen {
				dirs[dir] = p.PackageUID
			}
		}
	}
	return dirs
}

func crossesExcluded(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if excludedDirs[part] {
			return true
		}
	}
	return false
}

func longestPrefixPackage(path string, dirs map[string]string) (string, bool) {
	best := ""
	bestLen := -1
	for dir, uid := range dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			if len(dir) > bestLen {
				bestLen = len(dir)
				best = uid
			}
		}
	}
	return best, bestLen >= 0
}
