package bower

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/dectest"
)

func TestParseBowerJSON(t *testing.T) {
	root := dectest.WriteFS(t, fstest.MapFS{
		"bower.json": &fstest.MapFile{Data: []byte(`{
			"name": "jquery-ui",
			"version": "1.13.2",
			"description": "jQuery UI widgets",
			"license": "MIT",
			"homepage": "https://jqueryui.com",
			"keywords": ["ui", "widgets"],
			"authors": ["jQuery Foundation"],
			"dependencies": {"jquery": ">=1.6"},
			"devDependencies": {"qunit": "1.14.0"}
		}`)},
	})
	path := filepath.Join(root, "bower.json")

	d := Decoder{}
	if !d.IsMatch(path) {
		t.Fatalf("expected IsMatch(%q) = true", path)
	}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Name != "jquery-ui" || pd.Version != "1.13.2" {
		t.Fatalf("got name=%q version=%q", pd.Name, pd.Version)
	}
	if pd.ExtractedLicenseStatement != "MIT" {
		t.Fatalf("got license %q", pd.ExtractedLicenseStatement)
	}
	if len(pd.Parties) != 1 || pd.Parties[0].Name != "jQuery Foundation" {
		t.Fatalf("got parties %+v", pd.Parties)
	}
	if len(pd.Dependencies) != 2 {
		t.Fatalf("got %d dependencies, want 2: %+v", len(pd.Dependencies), pd.Dependencies)
	}
	var runtime, dev *pkgmeta.Dependency
	for i := range pd.Dependencies {
		dep := &pd.Dependencies[i]
		switch dep.Scope {
		case "dependencies":
			runtime = dep
		case "devDependencies":
			dev = dep
		}
	}
	if runtime == nil || !runtime.IsRuntime || runtime.IsOptional {
		t.Fatalf("bad runtime dependency: %+v", runtime)
	}
	if dev == nil || dev.IsRuntime || !dev.IsOptional {
		t.Fatalf("bad dev dependency: %+v", dev)
	}
	if pd.Purl != "pkg:bower/jquery-ui@1.13.2" {
		t.Fatalf("got purl %q", pd.Purl)
	}
}

func TestIsMatch(t *testing.T) {
	d := Decoder{}
	if !d.IsMatch("/some/path/bower.json") {
		t.Fatal("expected bower.json to match")
	}
	if d.IsMatch("/some/path/package.json") {
		t.Fatal("expected package.json not to match")
	}
}
