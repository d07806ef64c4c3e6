package nupkg

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeNupkg(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Newtonsoft.Json.13.0.3.nupkg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("Newtonsoft.Json.nuspec")
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Write([]byte(`<?xml version="1.0"?>
<package>
  <metadata>
    <id>Newtonsoft.Json</id>
    <version>13.0.3</version>
    <authors>James Newton-King</authors>
    <projectUrl>https://www.newtonsoft.com/json</projectUrl>
  </metadata>
</package>`))
	if err != nil {
		t.Fatal(err)
	}
	// An unrelated nested nuspec-like file that must be ignored.
	w2, err := zw.Create("lib/net6.0/decoy.nuspec")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w2.Write([]byte(`<package><metadata><id>decoy</id></metadata></package>`)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeNupkg(t)
	d := Decoder{}
	if !d.IsMatch(path) {
		t.Fatalf("expected IsMatch(%q) = true", path)
	}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Name != "Newtonsoft.Json" || pd.Version != "13.0.3" {
		t.Fatalf("got %+v", pd)
	}
	if pd.DatasourceID != DatasourceID {
		t.Fatalf("got %+v", pd)
	}
	if pd.Purl != "pkg:nuget/Newtonsoft.Json@13.0.3" {
		t.Fatalf("got purl %q", pd.Purl)
	}
}
