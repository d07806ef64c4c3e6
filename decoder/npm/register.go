package npm

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "npm package.json manifest",
		GlobPatterns:       []string{"package.json"},
		DefaultPackageType: "npm",
		PrimaryLanguage:    "JavaScript",
		SpecURL:            "https://docs.npmjs.com/cli/v10/configuring-npm/package-json",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
