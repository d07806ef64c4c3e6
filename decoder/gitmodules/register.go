package gitmodules

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Git .gitmodules submodule declarations",
		GlobPatterns:       []string{".gitmodules"},
		DefaultPackageType: "github",
		SpecURL:            "https://git-scm.com/docs/gitmodules",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
