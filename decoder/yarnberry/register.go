package yarnberry

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Yarn v2+ (Berry) yarn.lock resolved dependency graph",
		GlobPatterns:       []string{"yarn.lock"},
		DefaultPackageType: "npm",
		PrimaryLanguage:    "JavaScript",
		SpecURL:            "https://yarnpkg.com/configuration/yarnrc",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
