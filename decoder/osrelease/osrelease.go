// Package osrelease decodes /etc/os-release's shell-like KEY=VALUE lines
// into a linux-distro PackageData (§4.2.6), adapted from the teacher's
// os-release distribution scanner (formerly top-level osrelease/scanner.go,
// which scanned a container layer tar stream rather than a walked file).
package osrelease

import (
	"bufio"
	"context"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "etc_os_release"

type Decoder struct{}

func (Decoder) PackageType() string { return "linux-distro" }

func (Decoder) IsMatch(path string) bool {
	p := strings.ReplaceAll(path, `\`, "/")
	return strings.HasSuffix(p, "/etc/os-release") || strings.HasSuffix(p, "/usr/lib/os-release") || p == "etc/os-release"
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "linux-distro", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return minimal()
	}
	kv := parseShellKV(b)

	id := kv["ID"]
	idLike := kv["ID_LIKE"]
	pretty := kv["PRETTY_NAME"]
	name := kv["NAME"]
	version := kv["VERSION_ID"]

	namespace, distName := classify(id, idLike, pretty)

	pd := pkgmeta.PackageData{
		PackageType:  "linux-distro",
		DatasourceID: DatasourceID,
		Namespace:    namespace,
		Name:         distName,
		Version:      version,
		Description:  name,
		HomepageURL:  kv["HOME_URL"],
		ExtraData:    map[string]any{},
	}
	if pretty != "" {
		pd.ExtraData["pretty_name"] = pretty
	}
	if idLike != "" {
		pd.ExtraData["id_like"] = idLike
	}
	pd.Purl, _ = purl.Build("linux-distro", pd.Namespace, pd.Name, pd.Version, nil, "")
	return pd
}

// classify implements §4.2.6's ID/ID_LIKE/PRETTY_NAME derivation rules.
func classify(id, idLike, pretty string) (namespace, name string) {
	switch {
	case id == "debian" && strings.Contains(strings.ToLower(pretty), "distroless"):
		return "debian", "distroless"
	case id == "ubuntu" && idLike == "debian":
		return "debian", "ubuntu"
	case strings.HasPrefix(id, "fedora") || strings.Contains(idLike, "fedora"):
		if idLike != "" {
			return firstField(idLike), id
		}
		return id, id
	default:
		if idLike != "" {
			return firstField(idLike), id
		}
		return id, id
	}
}

func firstField(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return s
	}
	return f[0]
}

// parseShellKV parses os-release's "KEY=VALUE" lines, where VALUE may be
// bare, single-quoted, or double-quoted shell-style.
func parseShellKV(b []byte) map[string]string {
	out := make(map[string]string)
	sc := bufio.NewScanner(strings.NewReader(string(b)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.IndexByte(line, '=')
		if i < 0 {
			continue
		}
		k := strings.TrimSpace(line[:i])
		v := strings.TrimSpace(line[i+1:])
		if len(v) >= 2 {
			if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
				v = v[1 : len(v)-1]
			}
		}
		out[k] = v
	}
	return out
}
