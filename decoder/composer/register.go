package composer

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       JSONDatasourceID,
		Description:        "Composer composer.json manifest",
		GlobPatterns:       []string{"composer.json"},
		DefaultPackageType: "composer",
		PrimaryLanguage:    "PHP",
		SpecURL:            "https://getcomposer.org/doc/04-schema.md",
		Factory:            func() parser.Parser { return JSONDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       LockDatasourceID,
		Description:        "Composer composer.lock resolved dependency graph",
		GlobPatterns:       []string{"composer.lock"},
		DefaultPackageType: "composer",
		PrimaryLanguage:    "PHP",
		SpecURL:            "https://getcomposer.org/doc/01-basic-usage.md#the-lock-file",
		Factory:            func() parser.Parser { return LockDecoder{} },
	})
}
