package pnpmlock

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "pnpm-lock.yaml resolved dependency graph",
		GlobPatterns:       []string{"pnpm-lock.yaml"},
		DefaultPackageType: "npm",
		PrimaryLanguage:    "JavaScript",
		SpecURL:            "https://pnpm.io/git#lockfiles",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
