package jarmanifest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, lines ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "META-INF")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "MANIFEST.MF")
	content := strings.Join(lines, "\r\n") + "\r\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOSGiBasicBundle(t *testing.T) {
	path := writeManifest(t,
		"Manifest-Version: 1.0",
		"Bundle-SymbolicName: org.example.mybundle",
		"Bundle-Version: 1.2.3",
		"Bundle-Description: A comprehensive example OSGi bundle",
		"Bundle-DocURL: https://example.org/mybundle",
		"Bundle-License: https://www.apache.org/licenses/LICENSE-2.0",
		"Bundle-Vendor: Example Corp",
		`Import-Package: org.osgi.framework;version="[1.6,2)",javax.servlet;version="[3.0,4)"`,
		`Require-Bundle: org.eclipse.core.runtime;bundle-version="3.7.0"`,
		`Export-Package: org.example.mybundle;version="1.2.3"`,
	)

	d := OSGiManifestDecoder{}
	pkgs := d.ExtractPackages(context.Background(), path)
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1", len(pkgs))
	}
	pd := pkgs[0]

	if pd.PackageType != "osgi" || pd.DatasourceID != OSGiManifestDatasourceID {
		t.Fatalf("got %+v", pd)
	}
	if pd.Name != "org.example.mybundle" || pd.Version != "1.2.3" {
		t.Fatalf("got name/version %+v", pd)
	}
	if pd.Description != "A comprehensive example OSGi bundle" {
		t.Fatalf("got description %q", pd.Description)
	}
	if pd.HomepageURL != "https://example.org/mybundle" {
		t.Fatalf("got homepage %q", pd.HomepageURL)
	}
	if pd.ExtractedLicenseStatement != "https://www.apache.org/licenses/LICENSE-2.0" {
		t.Fatalf("got license %q", pd.ExtractedLicenseStatement)
	}
	if len(pd.Parties) != 1 || pd.Parties[0].Name != "Example Corp" || pd.Parties[0].Role != "vendor" {
		t.Fatalf("got parties %+v", pd.Parties)
	}
	if pd.Purl != "pkg:osgi/org.example.mybundle@1.2.3" {
		t.Fatalf("got purl %q", pd.Purl)
	}

	var importDeps, requireDeps []string
	for _, dep := range pd.Dependencies {
		switch dep.Scope {
		case "import":
			importDeps = append(importDeps, dep.Purl)
		case "require-bundle":
			requireDeps = append(requireDeps, dep.Purl)
		}
	}
	if len(importDeps) != 2 {
		t.Fatalf("got import deps %v", importDeps)
	}
	if len(requireDeps) != 1 || requireDeps[0] != "pkg:osgi/org.eclipse.core.runtime" {
		t.Fatalf("got require deps %v", requireDeps)
	}

	for _, dep := range pd.Dependencies {
		switch dep.Purl {
		case "pkg:osgi/org.osgi.framework":
			if dep.ExtractedRequirement != "[1.6,2)" || !dep.IsRuntime || dep.IsOptional {
				t.Fatalf("got osgi framework dep %+v", dep)
			}
		case "pkg:osgi/org.eclipse.core.runtime":
			if dep.ExtractedRequirement != "3.7.0" || !dep.IsRuntime {
				t.Fatalf("got require-bundle dep %+v", dep)
			}
		}
	}

	if got := pd.ExtraData["export_packages"]; got != `org.example.mybundle;version="1.2.3"` {
		t.Fatalf("got export_packages %q", got)
	}
}

func TestOSGiMinimalBundle(t *testing.T) {
	path := writeManifest(t,
		"Manifest-Version: 1.0",
		"Bundle-SymbolicName: com.simple.bundle",
		"Bundle-Version: 0.1.0",
	)
	d := OSGiManifestDecoder{}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Name != "com.simple.bundle" || pd.Version != "0.1.0" {
		t.Fatalf("got %+v", pd)
	}
	if pd.Purl != "pkg:osgi/com.simple.bundle@0.1.0" {
		t.Fatalf("got purl %q", pd.Purl)
	}
}

func TestOSGiSymbolicNameWithDirectives(t *testing.T) {
	path := writeManifest(t,
		"Manifest-Version: 1.0",
		"Bundle-SymbolicName: com.example.mybundle;singleton:=true",
		"Bundle-Version: 2.1.0",
	)
	d := OSGiManifestDecoder{}
	pd := d.ExtractFirstPackage(context.Background(), path)
	if pd.Name != "com.example.mybundle" || pd.Version != "2.1.0" {
		t.Fatalf("got %+v", pd)
	}
}

func TestNonOSGiManifestStaysMaven(t *testing.T) {
	path := writeManifest(t,
		"Manifest-Version: 1.0",
		"Implementation-Title: spring-web",
		"Implementation-Version: 5.3.20",
		"Implementation-Vendor: Spring Framework",
	)

	osgi := OSGiManifestDecoder{}
	if pkgs := osgi.ExtractPackages(context.Background(), path); len(pkgs) != 0 {
		t.Fatalf("expected no osgi results for non-osgi manifest, got %+v", pkgs)
	}

	jar := JarManifestDecoder{}
	pd := jar.ExtractFirstPackage(context.Background(), path)
	if pd.PackageType != "maven" || pd.DatasourceID != JarManifestDatasourceID {
		t.Fatalf("got %+v", pd)
	}
	if pd.Name != "spring-web" || pd.Version != "5.3.20" {
		t.Fatalf("got %+v", pd)
	}
	if len(pd.Parties) != 1 || pd.Parties[0].Name != "Spring Framework" {
		t.Fatalf("got parties %+v", pd.Parties)
	}
}

func TestSplitOSGiListWithQuotedCommas(t *testing.T) {
	list := `org.osgi.framework;version="[1.6,2)",javax.servlet;version="[3.0,4)"`
	got := splitOSGiList(list)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if got[0] != `org.osgi.framework;version="[1.6,2)"` || got[1] != `javax.servlet;version="[3.0,4)"` {
		t.Fatalf("got %v", got)
	}
}

func TestParseOSGiBundleListWithOptional(t *testing.T) {
	list := `org.eclipse.core.runtime;bundle-version="3.7.0",org.eclipse.ui;resolution:=optional`
	deps := parseBundleList(list, "require-bundle")
	if len(deps) != 2 {
		t.Fatalf("got %d deps", len(deps))
	}
	if deps[0].Purl != "pkg:osgi/org.eclipse.core.runtime" || deps[0].ExtractedRequirement != "3.7.0" || deps[0].IsOptional {
		t.Fatalf("got %+v", deps[0])
	}
	if deps[1].Purl != "pkg:osgi/org.eclipse.ui" || !deps[1].IsOptional || deps[1].IsRuntime {
		t.Fatalf("got %+v", deps[1])
	}
}

func TestIsMatch(t *testing.T) {
	d := JarManifestDecoder{}
	if !d.IsMatch("/app/META-INF/MANIFEST.MF") {
		t.Fatal("expected match")
	}
	if d.IsMatch("/app/META-INF/MANIFEST.txt") {
		t.Fatal("did not expect match")
	}
}
