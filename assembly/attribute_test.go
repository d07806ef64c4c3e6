package assembly

import (
	"testing"

	"github.com/quay/pkgmeta"
)

// TestAttribute exercises the longest-prefix directory match (C5): a file
// under a subdirectory that is itself a datafile's directory should
// attach to the more specific owner, not a shorter-prefix ancestor. It
// also checks that a file already carrying a ForPackages entry is left
// alone, and that a path crossing an excluded directory component is
// skipped even though it sits under an owned prefix.
func TestAttribute(t *testing.T) {
	pkgs := []*pkgmeta.Package{
		{
			PackageUID:    "pkg:npm/app@1.0.0",
			DatafilePaths: []string{"/repo/package.json"},
		},
		{
			PackageUID:    "pkg:npm/sub@1.0.0",
			DatafilePaths: []string{"/repo/packages/sub/package.json"},
		},
	}

	files := []*pkgmeta.FileInfo{
		{Path: "/repo/index.js"},                                  // owned by app, via /repo
		{Path: "/repo/packages/sub/index.js"},                     // owned by sub, the longer prefix
		{Path: "/repo/packages/sub/node_modules/dep/index.js"},    // excluded dir component
		{Path: "/repo/already-attributed.js", ForPackages: []string{"pkg:npm/other@1.0.0"}},
		{Path: "/elsewhere/orphan.js"}, // no owning directory at all
	}

	Attribute(files, pkgs)

	check := func(i int, want []string) {
		t.Helper()
		got := files[i].ForPackages
		if len(got) != len(want) {
			t.Fatalf("file %d: got ForPackages=%v, want %v", i, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("file %d: got ForPackages=%v, want %v", i, got, want)
			}
		}
	}

	check(0, []string{"pkg:npm/app@1.0.0"})
	check(1, []string{"pkg:npm/sub@1.0.0"})
	check(2, nil)
	check(3, []string{"pkg:npm/other@1.0.0"})
	check(4, nil)
}

func TestCrossesExcluded(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/repo/src/main.go", false},
		{"/repo/node_modules/left-pad/index.js", true},
		{"/repo/vendor/github.com/x/y/z.go", true},
		{"/repo/.git/HEAD", true},
		{"/repo/venv/lib/python3.11/site.py", true},
	}
	for _, tc := range cases {
		if got := crossesExcluded(tc.path); got != tc.want {
			t.Errorf("crossesExcluded(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
