package about

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "AboutCode .ABOUT file",
		GlobPatterns:       []string{"*.ABOUT"},
		DefaultPackageType: "about",
		SpecURL:            "https://aboutcode-toolkit.readthedocs.io/en/latest/specification.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
