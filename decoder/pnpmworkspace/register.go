package pnpmworkspace

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "pnpm-workspace.yaml member glob list",
		GlobPatterns:       []string{"pnpm-workspace.yaml"},
		DefaultPackageType: "npm",
		PrimaryLanguage:    "JavaScript",
		SpecURL:            "https://pnpm.io/pnpm-workspace_yaml",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
