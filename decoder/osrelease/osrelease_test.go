package osrelease

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClassify(t *testing.T) {
	cases := []struct {
		id, idLike, pretty string
		wantNS, wantName   string
	}{
		{"debian", "", "Distroless", "debian", "distroless"},
		{"ubuntu", "debian", "Ubuntu 22.04", "debian", "ubuntu"},
		{"fedora", "", "Fedora Linux", "fedora", "fedora"},
		{"rhel", "fedora", "Red Hat Enterprise Linux", "fedora", "rhel"},
		{"alpine", "", "Alpine Linux", "alpine", "alpine"},
	}
	for _, c := range cases {
		ns, name := classify(c.id, c.idLike, c.pretty)
		if ns != c.wantNS || name != c.wantName {
			t.Errorf("classify(%q,%q,%q) = (%q,%q), want (%q,%q)", c.id, c.idLike, c.pretty, ns, name, c.wantNS, c.wantName)
		}
	}
}

func TestParse(t *testing.T) {
	path := write(t, "os-release", "ID=ubuntu\nID_LIKE=debian\nVERSION_ID=\"22.04\"\nPRETTY_NAME=\"Ubuntu 22.04.3 LTS\"\nNAME=\"Ubuntu\"\n")
	d := Decoder{}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Namespace != "debian" || pd.Name != "ubuntu" || pd.Version != "22.04" {
		t.Fatalf("got %+v", pd)
	}
	if pd.DatasourceID != DatasourceID || pd.PackageType != "linux-distro" {
		t.Fatalf("got %+v", pd)
	}
}
