package mum

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sampleMUM = `<?xml version="1.0" encoding="UTF-8"?>
<assembly
    xmlns="urn:schemas-microsoft-com:asm.v3"
    manifestVersion="1.0"
    description="Update for Windows"
    copyright="(c) Microsoft Corporation. All rights reserved."
    supportInformation="https://support.microsoft.com/help/5001234">
  <assemblyIdentity
      name="Package_for_KB5001234"
      version="10.0.19041.1"
      processorArchitecture="amd64"
      language="neutral"
      publicKeyToken="31bf3856ad364e35" />
</assembly>
`

func writeMUM(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "update.mum")
	if err := os.WriteFile(path, []byte(sampleMUM), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeMUM(t)
	d := Decoder{}
	if !d.IsMatch(path) {
		t.Fatalf("expected IsMatch(%q) = true", path)
	}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Name != "Package_for_KB5001234" || pd.Version != "10.0.19041.1" {
		t.Fatalf("got %+v", pd)
	}
	if pd.DatasourceID != DatasourceID || pd.PackageType != "windows-update" {
		t.Fatalf("got %+v", pd)
	}
	if pd.Description != "Update for Windows" {
		t.Fatalf("got description %q", pd.Description)
	}
	if pd.HomepageURL != "https://support.microsoft.com/help/5001234" {
		t.Fatalf("got homepage %q", pd.HomepageURL)
	}
	if got := pd.ExtraData["copyright"]; got != "(c) Microsoft Corporation. All rights reserved." {
		t.Fatalf("got copyright %q", got)
	}
}

func TestIsMatch(t *testing.T) {
	d := Decoder{}
	if d.IsMatch("readme.txt") {
		t.Fatal("did not expect match on non-.mum file")
	}
}

func TestMissingFile(t *testing.T) {
	d := Decoder{}
	pd := d.ExtractFirstPackage(context.Background(), "/nonexistent/update.mum")
	if pd.Name != "" || pd.DatasourceID != DatasourceID {
		t.Fatalf("got %+v", pd)
	}
}
