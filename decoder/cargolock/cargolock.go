// Package cargolock decodes Cargo.lock (§4.2.5): the root package is the
// first [[package]] entry; every other entry becomes a direct
// Dependency of the root.
package cargolock

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "cargo_lock"

type Decoder struct{}

func (Decoder) PackageType() string { return "cargo" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "Cargo.lock" }

type lockPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}

type document struct {
	Package []lockPackage `toml:"package"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		slog.WarnContext(ctx, "cargolock: parse failed", "datasource_id", DatasourceID, "error", err)
		return []pkgmeta.PackageData{minimal()}
	}
	if len(doc.Package) == 0 {
		slog.WarnContext(ctx, "cargolock: no packages", "datasource_id", DatasourceID)
		return []pkgmeta.PackageData{minimal()}
	}
	root := doc.Package[0]
	pd := pkgmeta.PackageData{
		PackageType:     "cargo",
		PrimaryLanguage: "Rust",
		DatasourceID:    DatasourceID,
		Name:            root.Name,
		Version:         root.Version,
	}
	pd.Purl, _ = purl.Build("cargo", "", root.Name, root.Version, nil, "")
	for _, p := range doc.Package[1:] {
		rp := &pkgmeta.ResolvedPackage{Version: p.Version}
		rp.Purl, _ = purl.Build("cargo", "", p.Name, p.Version, nil, "")
		if len(p.Checksum) == 64 {
			rp.Hashes.SHA256 = p.Checksum
		}
		dep := pkgmeta.Dependency{
			Scope:           "dependencies",
			IsRuntime:       true,
			IsPinned:        true,
			IsDirect:        true,
			Purl:            rp.Purl,
			ResolvedPackage: rp,
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}
	return []pkgmeta.PackageData{pd}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal()
	}
	return pds[0]
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "cargo", PrimaryLanguage: "Rust", DatasourceID: DatasourceID}
}
