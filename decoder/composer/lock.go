package composer

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

// LockDecoder handles composer.lock, emitting both packages[] (runtime)
// and packages-dev[] with full ResolvedPackage source/dist/shasum data
// (§4.2.5).
type LockDecoder struct{}

func (LockDecoder) PackageType() string { return "composer" }

func (LockDecoder) IsMatch(path string) bool { return filepath.Base(path) == "composer.lock" }

type lockPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  struct {
		Type      string `json:"type"`
		URL       string `json:"url"`
		Reference string `json:"reference"`
	} `json:"source"`
	Dist struct {
		Type      string `json:"type"`
		URL       string `json:"url"`
		Reference string `json:"reference"`
		Shasum    string `json:"shasum"`
	} `json:"dist"`
	Require map[string]string `json:"require"`
}

type lockFile struct {
	Packages    []lockPackage `json:"packages"`
	PackagesDev []lockPackage `json:"packages-dev"`
}

func (d LockDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, LockDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalLock()}
	}
	var lf lockFile
	if err := json.Unmarshal(b, &lf); err != nil {
		slog.WarnContext(ctx, "composer: lock parse failed", "datasource_id", LockDatasourceID, "error", err)
		return []pkgmeta.PackageData{minimalLock()}
	}
	if len(lf.Packages) == 0 && len(lf.PackagesDev) == 0 {
		slog.WarnContext(ctx, "composer: lock has no packages", "datasource_id", LockDatasourceID)
	}
	pd := minimalLock()
	buildDeps(&pd, lf.Packages, "require", true, false)
	buildDeps(&pd, lf.PackagesDev, "require-dev", false, true)
	return []pkgmeta.PackageData{pd}
}

func (d LockDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalLock()
	}
	return pds[0]
}

func minimalLock() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "composer", PrimaryLanguage: "PHP", DatasourceID: LockDatasourceID}
}

func buildDeps(pd *pkgmeta.PackageData, pkgs []lockPackage, scope string, isRuntime, isOptional bool) {
	for _, p := range pkgs {
		ns, nm := splitVendor(p.Name)
		rp := &pkgmeta.ResolvedPackage{Version: p.Version}
		rp.Purl, _ = purl.Build("composer", ns, nm, p.Version, nil, "")
		algo, hash := hashAlgo(p.Dist.Shasum)
		switch algo {
		case "sha1":
			rp.Hashes.SHA1 = hash
		case "sha256":
			rp.Hashes.SHA256 = hash
		case "sha512":
			rp.Hashes.SHA512 = hash
		}
		dep := pkgmeta.Dependency{
			Scope:           scope,
			IsRuntime:       isRuntime,
			IsOptional:      isOptional,
			IsDirect:        true,
			IsPinned:        true,
			ResolvedPackage: rp,
			ExtraData: map[string]any{
				"source_type": p.Source.Type,
				"source_url":  p.Source.URL,
				"dist_url":    p.Dist.URL,
			},
		}
		dep.Purl = rp.Purl
		pd.Dependencies = append(pd.Dependencies, dep)
	}
}

// hashAlgo determines the hash algorithm by length per §4.2.1: 40 hex =
// sha1, 64 = sha256, 128 = sha512.
func hashAlgo(hash string) (algo, value string) {
	switch len(hash) {
	case 40:
		return "sha1", hash
	case 64:
		return "sha256", hash
	case 128:
		return "sha512", hash
	default:
		return "", ""
	}
}
