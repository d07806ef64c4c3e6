package rpminstalled

import (
	"context"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want dbKind
	}{
		{"/var/lib/rpm/Packages", kindBDB},
		{"/var/lib/rpm/Packages.db", kindNDB},
		{"/usr/lib/sysimage/rpm/rpmdb.sqlite", kindSQLite},
		{"/var/lib/rpm/Provides", kindUnknown},
	}
	for _, c := range cases {
		if got := classify(c.path); got != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestIsMatch(t *testing.T) {
	d := Decoder{}
	if !d.IsMatch("/var/lib/rpm/Packages") {
		t.Fatal("expected match on bdb Packages path")
	}
	if d.IsMatch("/var/lib/rpm/__db.001") {
		t.Fatal("did not expect match on bdb lock file")
	}
}

func TestNDBUnsupportedReportsError(t *testing.T) {
	d := Decoder{}
	pkgs := d.ExtractPackages(context.Background(), "/var/lib/rpm/Packages.db")
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1 minimal error record", len(pkgs))
	}
	if pkgs[0].DatasourceID != DatasourceID {
		t.Fatalf("got %+v", pkgs[0])
	}
	if _, ok := pkgs[0].ExtraData["error"]; !ok {
		t.Fatalf("expected an error in ExtraData, got %+v", pkgs[0])
	}
}

func TestNonexistentBDBReportsError(t *testing.T) {
	d := Decoder{}
	pkgs := d.ExtractPackages(context.Background(), "/nonexistent/Packages")
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1 minimal error record", len(pkgs))
	}
	if _, ok := pkgs[0].ExtraData["error"]; !ok {
		t.Fatalf("expected an error in ExtraData, got %+v", pkgs[0])
	}
}
