package pnpmlock

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/dectest"
)

// TestExtractPackagesV9 exercises the lockfileVersion 9 shape: importer
// dependency values are {specifier, version} objects rather than bare
// strings, and a snapshot's dependency values can carry a
// "(peerdep@version)" suffix that has to be truncated at the first "("
// to line up with the package's un-suffixed snapshot key. "shared" is
// depended on at two different versions, one only reachable from the
// prod root and one only from the dev root, so a seed-extraction bug
// that silently fails to resolve the importer specifier would either
// misclassify one of them or, prior to the v9 Packages/Snapshots fix,
// emit each package twice.
func TestExtractPackagesV9(t *testing.T) {
	root := dectest.WriteFS(t, fstest.MapFS{
		"pnpm-lock.yaml": &fstest.MapFile{Data: []byte(`
lockfileVersion: '9.0'

importers:
  .:
    dependencies:
      foo:
        specifier: ^1.0.0
        version: 1.0.0
    devDependencies:
      bar:
        specifier: ^2.0.0
        version: 2.0.0

packages:
  foo@1.0.0:
    resolution: {integrity: sha512-foo==}
  bar@2.0.0:
    resolution: {integrity: sha512-bar==}
  shared@1.0.0:
    resolution: {integrity: sha512-shared1==}
  shared@2.0.0:
    resolution: {integrity: sha512-shared2==}

snapshots:
  foo@1.0.0:
    dependencies:
      shared: 1.0.0
  bar@2.0.0:
    dependencies:
      shared: 2.0.0(peerdep@1.0.0)
  shared@1.0.0: {}
  shared@2.0.0: {}
`)},
	})
	path := filepath.Join(root, "pnpm-lock.yaml")

	d := Decoder{}
	if !d.IsMatch(path) {
		t.Fatalf("expected IsMatch(%q) = true", path)
	}
	pds := d.ExtractPackages(context.Background(), path)
	if len(pds) != 1 {
		t.Fatalf("got %d package records, want 1", len(pds))
	}
	deps := pds[0].Dependencies
	if len(deps) != 4 {
		t.Fatalf("got %d dependencies, want 4 (one per packages entry, no duplicates): %+v", len(deps), deps)
	}

	byPurl := map[string]pkgmeta.Dependency{}
	for _, dep := range deps {
		byPurl[dep.Purl] = dep
	}

	foo, ok := byPurl["pkg:npm/foo@1.0.0"]
	if !ok || !foo.IsRuntime || foo.Scope != "dependencies" {
		t.Fatalf("bad foo dependency: %+v (have %+v)", foo, byPurl)
	}
	bar, ok := byPurl["pkg:npm/bar@2.0.0"]
	if !ok || bar.IsRuntime || bar.Scope != "dev" {
		t.Fatalf("bad bar dependency: %+v", bar)
	}
	shared1, ok := byPurl["pkg:npm/shared@1.0.0"]
	if !ok || !shared1.IsRuntime {
		t.Fatalf("shared@1.0.0 should be reachable from the prod root: %+v", shared1)
	}
	shared2, ok := byPurl["pkg:npm/shared@2.0.0"]
	if !ok || shared2.IsRuntime {
		t.Fatalf("shared@2.0.0 should be dev-only (reachable only through bar): %+v", shared2)
	}
}

func TestLockfileMajor(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{"5.4", 5},
		{"6.0", 6},
		{"9.0", 9},
		{9.0, 9},
		{6.0, 6},
	}
	for _, tc := range cases {
		if got := lockfileMajor(tc.in); got != tc.want {
			t.Errorf("lockfileMajor(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
