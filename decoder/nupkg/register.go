package nupkg

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Packed NuGet package archive (.nupkg)",
		GlobPatterns:       []string{"*.nupkg"},
		DefaultPackageType: "nuget",
		SpecURL:            "https://learn.microsoft.com/en-us/nuget/reference/nuspec",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
