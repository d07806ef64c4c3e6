package gemfile

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       GemfileDatasourceID,
		Description:        "Bundler Gemfile",
		GlobPatterns:       []string{"Gemfile"},
		DefaultPackageType: "gem",
		PrimaryLanguage:    "Ruby",
		SpecURL:            "https://bundler.io/man/gemfile.5.html",
		Factory:            func() parser.Parser { return GemfileDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       LockDatasourceID,
		Description:        "Bundler Gemfile.lock resolved dependency graph",
		GlobPatterns:       []string{"Gemfile.lock"},
		DefaultPackageType: "gem",
		PrimaryLanguage:    "Ruby",
		SpecURL:            "https://bundler.io/v2.5/man/gemfile.5.html",
		Factory:            func() parser.Parser { return LockDecoder{} },
	})
}
