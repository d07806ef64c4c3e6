package gradle

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/quay/pkgmeta/internal/dectest"
)

func TestParseDependenciesBlock(t *testing.T) {
	src := `
plugins {
	id 'java'
}

dependencies {
	implementation 'org.apache.commons:commons-lang3:3.12.0'
	testImplementation group: 'junit', name: 'junit', version: '4.13.2'
	// a comment that should be stripped
	api project(':shared:util')
}

dependencies {
	implementation 'com.example:ignored:1.0.0'
}
`
	root := dectest.WriteFS(t, fstest.MapFS{
		"build.gradle": &fstest.MapFile{Data: []byte(src)},
	})
	path := filepath.Join(root, "build.gradle")

	d := Decoder{}
	if !d.IsMatch(path) {
		t.Fatalf("expected IsMatch(%q) = true", path)
	}
	if !d.IsMatch(filepath.Join(root, "build.gradle.kts")) {
		t.Fatal("expected build.gradle.kts to match too")
	}

	pd := d.ExtractFirstPackage(context.Background(), path)
	if len(pd.Dependencies) != 3 {
		t.Fatalf("got %d dependencies, want 3: %+v", len(pd.Dependencies), pd.Dependencies)
	}

	coord := pd.Dependencies[0]
	if coord.Scope != "implementation" || !coord.IsRuntime || coord.Purl != "pkg:maven/org.apache.commons/commons-lang3@3.12.0" {
		t.Fatalf("bad coordinate dependency: %+v", coord)
	}
	if !coord.IsPinned {
		t.Fatalf("expected exact coordinate version to be pinned: %+v", coord)
	}

	kv := pd.Dependencies[1]
	if kv.Scope != "testImplementation" || kv.IsRuntime || !kv.IsOptional || kv.Purl != "pkg:maven/junit/junit@4.13.2" {
		t.Fatalf("bad key-value dependency: %+v", kv)
	}

	proj := pd.Dependencies[2]
	if proj.Scope != "project" || proj.Purl != "pkg:maven/util" {
		t.Fatalf("bad project dependency: %+v", proj)
	}

	for _, dep := range pd.Dependencies {
		if dep.Purl == "pkg:maven/com.example/ignored@1.0.0" {
			t.Fatalf("dependency from second dependencies block leaked through: %+v", dep)
		}
	}
}
