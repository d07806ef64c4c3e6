// Package jarmanifest decodes META-INF/MANIFEST.MF, the main-attributes
// header block carried inside every jar/war/ear. The header block is
// RFC 822-shaped (colon-separated, single-space continuation lines), so
// parsing reuses net/mail.ReadMessage exactly the way the teacher's
// java/jar package does for the same file, rather than hand-rolling a
// line folder.
//
// A manifest carrying Bundle-SymbolicName is an OSGi bundle manifest
// (java_osgi_manifest, package_type "osgi", [OSGiManifestDecoder]);
// anything else is treated as a plain jar manifest (java_jar_manifest,
// package_type "maven", [JarManifestDecoder]) using the
// "Implementation-*"/"Specification-*" main attributes documented at
// https://docs.oracle.com/javase/8/docs/technotes/guides/jar/jar.html.
// Both decoders match the same path; each yields zero results for a
// manifest belonging to the other kind.
package jarmanifest

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"path/filepath"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const (
	JarManifestDatasourceID  = "java_jar_manifest"
	OSGiManifestDatasourceID = "java_osgi_manifest"
)

func isManifestPath(path string) bool {
	return strings.HasSuffix(filepath.ToSlash(path), "META-INF/MANIFEST.MF")
}

func minimal(datasourceID, packageType string) pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: packageType, DatasourceID: datasourceID}
}

// readManifest reads and parses the main section, logging and reporting
// ok=false on any read or RFC 822 framing failure.
func readManifest(ctx context.Context, datasourceID, path string) (mail.Header, bool) {
	b, ok := decutil.ReadFile(ctx, datasourceID, path)
	if !ok {
		return nil, false
	}
	header, err := readMainSection(b)
	if err != nil {
		slog.WarnContext(ctx, "jarmanifest: unreadable manifest", "path", path, "error", err)
		return nil, false
	}
	return header, true
}

// JarManifestDecoder handles the plain (non-OSGi) jar manifest case. A
// manifest carrying Bundle-SymbolicName belongs to [OSGiManifestDecoder]
// instead, so this decoder yields zero results for it rather than a
// duplicate, differently-typed record.
type JarManifestDecoder struct{}

func (JarManifestDecoder) PackageType() string { return "maven" }

func (JarManifestDecoder) IsMatch(path string) bool { return isManifestPath(path) }

func (d JarManifestDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	header, ok := readManifest(ctx, JarManifestDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimal(JarManifestDatasourceID, "maven")}
	}
	if header.Get("Bundle-SymbolicName") != "" {
		return nil
	}
	return []pkgmeta.PackageData{parseJarManifest(header)}
}

func (d JarManifestDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pkgs := d.ExtractPackages(ctx, path)
	if len(pkgs) == 0 {
		return minimal(JarManifestDatasourceID, "maven")
	}
	return pkgs[0]
}

// OSGiManifestDecoder handles the OSGi-bundle case, the complement of
// [JarManifestDecoder] over the same META-INF/MANIFEST.MF path.
type OSGiManifestDecoder struct{}

func (OSGiManifestDecoder) PackageType() string { return "osgi" }

func (OSGiManifestDecoder) IsMatch(path string) bool { return isManifestPath(path) }

func (d OSGiManifestDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	header, ok := readManifest(ctx, OSGiManifestDatasourceID, path)
	if !ok {
		return nil
	}
	if header.Get("Bundle-SymbolicName") == "" {
		return nil
	}
	return []pkgmeta.PackageData{parseOSGi(header)}
}

func (d OSGiManifestDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pkgs := d.ExtractPackages(ctx, path)
	if len(pkgs) == 0 {
		return minimal(OSGiManifestDatasourceID, "osgi")
	}
	return pkgs[0]
}

// readMainSection parses the first ("main") section of a jar manifest as
// RFC 822 headers, stopping before any per-entry "Name:" sections so a
// continuation line in the main section is never confused with the start
// of an entry section.
func readMainSection(b []byte) (mail.Header, error) {
	if i := bytes.Index(b, []byte("\nName:")); i != -1 {
		b = b[:i]
	}
	if !bytes.HasSuffix(b, []byte("\r\n\r\n")) {
		b = append(bytes.TrimRight(b, "\r\n"), "\r\n\r\n"...)
	}
	msg, err := mail.ReadMessage(bufio.NewReader(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	if len(msg.Header) == 0 {
		return nil, errors.New("jarmanifest: no headers found")
	}
	return msg.Header, nil
}

func parseJarManifest(h mail.Header) pkgmeta.PackageData {
	pd := pkgmeta.PackageData{PackageType: "maven", DatasourceID: JarManifestDatasourceID}
	pd.Name = firstNonEmpty(h.Get("Implementation-Title"), h.Get("Specification-Title"))
	pd.Version = firstNonEmpty(h.Get("Implementation-Version"), h.Get("Specification-Version"))
	if vendor := firstNonEmpty(h.Get("Implementation-Vendor"), h.Get("Specification-Vendor")); vendor != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleVendor, Name: vendor})
	}
	return pd
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseOSGi(h mail.Header) pkgmeta.PackageData {
	pd := pkgmeta.PackageData{PackageType: "osgi", DatasourceID: OSGiManifestDatasourceID}

	name := h.Get("Bundle-SymbolicName")
	if i := strings.IndexByte(name, ';'); i != -1 {
		name = name[:i]
	}
	pd.Name = strings.TrimSpace(name)
	pd.Version = h.Get("Bundle-Version")
	pd.Description = h.Get("Bundle-Description")
	pd.HomepageURL = h.Get("Bundle-DocURL")
	pd.ExtractedLicenseStatement = h.Get("Bundle-License")
	if vendor := h.Get("Bundle-Vendor"); vendor != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleVendor, Name: vendor})
	}

	if imp := h.Get("Import-Package"); imp != "" {
		pd.Dependencies = append(pd.Dependencies, parsePackageList(imp, "import")...)
	}
	if req := h.Get("Require-Bundle"); req != "" {
		pd.Dependencies = append(pd.Dependencies, parseBundleList(req, "require-bundle")...)
	}
	if exp := h.Get("Export-Package"); exp != "" {
		pd.ExtraData = map[string]any{"export_packages": exp}
	}

	if pd.Name != "" {
		pd.Purl, _ = purl.Build("osgi", "", pd.Name, pd.Version, nil, "")
	}
	return pd
}

// splitOSGiList splits a comma-separated OSGi header value on top-level
// commas only, leaving commas inside a quoted attribute value (e.g. a
// version range like "[1.6,2)") untouched.
func splitOSGiList(list string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range list {
		switch r {
		case '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case ',':
			if inQuotes {
				cur.WriteRune(r)
				continue
			}
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func entryAttr(entry, key string) (string, bool) {
	for _, part := range strings.Split(entry, ";") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, key+"="); ok {
			return strings.Trim(v, `"`), true
		}
	}
	return "", false
}

func entryDirective(entry, key string) (string, bool) {
	for _, part := range strings.Split(entry, ";") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, key+":="); ok {
			return strings.Trim(v, `"`), true
		}
	}
	return "", false
}

func entryName(entry string) string {
	if i := strings.IndexByte(entry, ';'); i != -1 {
		return entry[:i]
	}
	return entry
}

func parsePackageList(list, scope string) []pkgmeta.Dependency {
	return parseOSGiEntries(list, scope, "version")
}

func parseBundleList(list, scope string) []pkgmeta.Dependency {
	return parseOSGiEntries(list, scope, "bundle-version")
}

func parseOSGiEntries(list, scope, versionKey string) []pkgmeta.Dependency {
	var out []pkgmeta.Dependency
	for _, raw := range splitOSGiList(list) {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		name := entryName(entry)
		version, _ := entryAttr(entry, versionKey)
		resolution, _ := entryDirective(entry, "resolution")
		optional := resolution == "optional"
		dep := pkgmeta.Dependency{
			ExtractedRequirement: version,
			Scope:                scope,
			IsRuntime:            !optional,
			IsOptional:           optional,
			IsDirect:             true,
		}
		dep.Purl, _ = purl.Build("osgi", "", name, "", nil, "")
		out = append(out, dep)
	}
	return out
}
