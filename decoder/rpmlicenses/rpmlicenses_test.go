package rpmlicenses

import (
	"context"
	"testing"
)

func TestParse(t *testing.T) {
	d := Decoder{}
	path := "/rootfs/usr/share/licenses/bash/COPYING"
	if !d.IsMatch(path) {
		t.Fatalf("expected IsMatch(%q) = true", path)
	}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Name != "bash" || pd.Namespace != "mariner" || pd.Purl != "pkg:rpm/mariner/bash" {
		t.Fatalf("got %+v", pd)
	}
}

func TestIsMatchRejectsUnrelated(t *testing.T) {
	d := Decoder{}
	if d.IsMatch("/usr/share/doc/bash/README") {
		t.Fatal("should not match a non-license file")
	}
}
