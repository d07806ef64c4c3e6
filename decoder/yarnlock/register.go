package yarnlock

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Yarn v1 yarn.lock resolved dependency graph",
		GlobPatterns:       []string{"yarn.lock"},
		DefaultPackageType: "npm",
		PrimaryLanguage:    "JavaScript",
		SpecURL:            "https://classic.yarnpkg.com/lang/en/docs/yarn-lock/",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
