package bower

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Bower bower.json manifest",
		GlobPatterns:       []string{"bower.json"},
		DefaultPackageType: "bower",
		PrimaryLanguage:    "JavaScript",
		SpecURL:            "https://bower.io/docs/config/#bowerjson-specification",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
