package podspec

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "CocoaPods .podspec recipe",
		GlobPatterns:       []string{"*.podspec"},
		DefaultPackageType: "cocoapods",
		SpecURL:            "https://guides.cocoapods.org/syntax/podspec.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
