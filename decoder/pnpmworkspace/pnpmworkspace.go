// Package pnpmworkspace decodes pnpm-workspace.yaml, the pnpm analogue
// of Cargo's [workspace] table (§4.2.1). Unlike Cargo, pnpm does not
// require member rewriting here: pnpm workspaces don't carry inherited
// fields the way Cargo's [workspace.package] does, so this decoder just
// surfaces the package globs as ExtraData for downstream tooling.
package pnpmworkspace

import (
	"context"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
)

const DatasourceID = "pnpm_workspace_yaml"

type Decoder struct{}

func (Decoder) PackageType() string { return "npm" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "pnpm-workspace.yaml" }

type document struct {
	Packages []string `yaml:"packages"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "npm", PrimaryLanguage: "JavaScript", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return minimal()
	}
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		slog.WarnContext(ctx, "pnpmworkspace: parse failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	pd := minimal()
	if len(doc.Packages) > 0 {
		pd.ExtraData = map[string]any{"packages": doc.Packages}
	}
	return pd
}
