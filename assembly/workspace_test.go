package assembly

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quay/pkgmeta"
)

// TestAssembleCargoWorkspace exercises §4.3 / S3: a workspace root with one
// glob member that inherits its version from [workspace.package], plus
// file reattribution under the workspace directory.
func TestAssembleCargoWorkspace(t *testing.T) {
	root := filepath.FromSlash("/ws/Cargo.toml")
	memberManifest := filepath.FromSlash("/ws/crates/a/Cargo.toml")
	memberSrc := filepath.FromSlash("/ws/crates/a/src/lib.rs")
	targetFile := filepath.FromSlash("/ws/target/debug/build")

	files := []*pkgmeta.FileInfo{
		{Path: root, PackageData: []pkgmeta.PackageData{{
			PackageType:  "cargo",
			DatasourceID: "cargo_toml",
			ExtraData: map[string]any{
				"workspace":         map[string]any{"members": []any{"crates/*"}},
				"workspace.package": map[string]any{"version": "0.1.0"},
			},
		}}},
		{Path: memberManifest, PackageData: []pkgmeta.PackageData{{
			PackageType:  "cargo",
			DatasourceID: "cargo_toml",
			Name:         "a",
			Purl:         "pkg:cargo/a",
			ExtraData: map[string]any{
				"workspace_inherit": map[string]bool{"version": true},
			},
		}}},
		{Path: memberSrc},
		{Path: targetFile},
	}

	pkgs, _ := Assemble(context.Background(), files)

	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1: %+v", len(pkgs), pkgs)
	}
	p := pkgs[0]
	if p.Name != "a" || p.Version != "0.1.0" {
		t.Fatalf("got name=%q version=%q, want a/0.1.0", p.Name, p.Version)
	}
	want := "https://crates.io/api/v1/crates/a/0.1.0/download"
	if p.RepositoryDownloadURL != want {
		t.Fatalf("got repository_download_url=%q, want %q", p.RepositoryDownloadURL, want)
	}
	for _, ds := range p.DatasourceIDs {
		if ds == "cargo_toml" {
			continue
		}
		t.Fatalf("unexpected datasource id %q", ds)
	}

	// §8 invariant #4: every file under the workspace root is either
	// unattributed (target/), attributed to exactly one member, or to
	// all members. Here there's only one member, so the src file must
	// carry exactly p.PackageUID, and it must be the SAME uid consolidate
	// minted onto the Package — not a bare purl left over from the
	// workspace rewrite.
	var srcFile, targetFI *pkgmeta.FileInfo
	for _, f := range files {
		switch f.Path {
		case memberSrc:
			srcFile = f
		case targetFile:
			targetFI = f
		}
	}
	if len(srcFile.ForPackages) != 1 || srcFile.ForPackages[0] != p.PackageUID {
		t.Fatalf("got src ForPackages=%v, want [%q]", srcFile.ForPackages, p.PackageUID)
	}
	if len(targetFI.ForPackages) != 0 {
		t.Fatalf("got target ForPackages=%v, want empty (build output)", targetFI.ForPackages)
	}
	if p.PackageUID == p.Purl {
		t.Fatalf("package_uid %q should carry a minted ?uuid= suffix beyond the bare purl", p.PackageUID)
	}
}

// TestAssembleCargoWorkspaceZeroMembers exercises the "workspace pattern
// miss" error path (§7): a root whose member glob resolves nothing is
// skipped, not deleted.
func TestAssembleCargoWorkspaceZeroMembers(t *testing.T) {
	root := filepath.FromSlash("/ws/Cargo.toml")
	files := []*pkgmeta.FileInfo{
		{Path: root, PackageData: []pkgmeta.PackageData{{
			PackageType:  "cargo",
			DatasourceID: "cargo_toml",
			ExtraData: map[string]any{
				"workspace": map[string]any{"members": []any{"nothing/*"}},
			},
		}}},
	}
	pkgs, _ := Assemble(context.Background(), files)
	if len(pkgs) != 1 || pkgs[0].DatasourceIDs[0] != "cargo_toml" {
		t.Fatalf("expected the untouched workspace-root record to survive, got %+v", pkgs)
	}
}

// TestAssembleIdempotent covers §8 #8: running Assemble twice on its own
// output is a no-op (no cargo_toml roots remain the second time, so
// discoverRoots finds nothing and consolidate just passes packages
// through unchanged in count and identity).
func TestAssembleIdempotent(t *testing.T) {
	files := []*pkgmeta.FileInfo{
		{Path: "/a/package.json", PackageData: []pkgmeta.PackageData{{
			PackageType: "npm", DatasourceID: "npm_package_json", Name: "a", Version: "1.0.0", Purl: "pkg:npm/a@1.0.0",
		}}},
	}
	pkgs1, _ := Assemble(context.Background(), files)
	if len(pkgs1) != 1 {
		t.Fatalf("got %d packages", len(pkgs1))
	}

	files2 := []*pkgmeta.FileInfo{{Path: "/a/package.json", PackageData: []pkgmeta.PackageData{pkgs1[0].PackageData}}}
	pkgs2, _ := Assemble(context.Background(), files2)
	if len(pkgs2) != 1 || pkgs2[0].Purl != pkgs1[0].Purl {
		t.Fatalf("second Assemble diverged: %+v vs %+v", pkgs1[0], pkgs2[0])
	}
}
