package podfilelock

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "CocoaPods Podfile.lock resolved dependency graph",
		GlobPatterns:       []string{"Podfile.lock"},
		DefaultPackageType: "cocoapods",
		SpecURL:            "https://guides.cocoapods.org/using/podfile.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
