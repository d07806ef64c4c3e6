package main

import (
	"context"
	"testing"

	"github.com/quay/pkgmeta"
)

func TestSummary(t *testing.T) {
	scan := &Scan{
		Files: []*pkgmeta.FileInfo{
			{RelPath: "a/package.json"},
			{RelPath: "b/Cargo.toml", ScanErrors: []string{"cargo_toml: b/Cargo.toml"}},
		},
		Packages: []*pkgmeta.Package{{}, {}},
	}
	s := scan.Summary()
	if s.FilesScanned != 2 || s.PackageCount != 2 || s.ErrorCount != 1 {
		t.Fatalf("got %+v", s)
	}
}

func TestAssembleSortsFilesByRelPath(t *testing.T) {
	files := []*pkgmeta.FileInfo{
		{RelPath: "z.txt"},
		{RelPath: "a.txt"},
		{RelPath: "m.txt"},
	}
	scan := assemble(context.Background(), files)
	var got []string
	for _, f := range scan.Files {
		got = append(got, f.RelPath)
	}
	want := []string{"a.txt", "m.txt", "z.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
