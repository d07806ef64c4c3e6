package pydistinfo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestParseWheelMetadata(t *testing.T) {
	dir := t.TempDir()
	distInfo := filepath.Join(dir, "flask-2.3.0.dist-info")
	if err := os.MkdirAll(distInfo, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(distInfo, "METADATA")
	content := "Metadata-Version: 2.1\r\n" +
		"Name: Flask\r\n" +
		"Version: 2.3.0\r\n" +
		"Summary: A simple framework\r\n" +
		"Author: Pallets\r\n" +
		"Requires-Dist: itsdangerous (>=2.1.2)\r\n" +
		"Requires-Dist: python-dotenv (>=0.21) ; extra == \"dotenv\"\r\n" +
		"\r\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d := Decoder{}
	if !d.IsMatch(path) {
		t.Fatalf("expected IsMatch(%q) = true", path)
	}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Name != "flask" || pd.Version != "2.3.0" {
		t.Fatalf("got name=%q version=%q", pd.Name, pd.Version)
	}
	if len(pd.Dependencies) != 2 {
		t.Fatalf("got %d dependencies, want 2: %+v", len(pd.Dependencies), pd.Dependencies)
	}
	if !pd.Dependencies[0].IsRuntime || pd.Dependencies[1].IsRuntime {
		t.Fatalf("got %+v", pd.Dependencies)
	}
	if pd.Purl != "pkg:pypi/flask@2.3.0" {
		t.Fatalf("got purl %q", pd.Purl)
	}
}
