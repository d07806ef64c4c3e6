package buck

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       BuildDatasourceID,
		Description:        "Buck BUCK file",
		GlobPatterns:       []string{"BUCK"},
		DefaultPackageType: "buck",
		SpecURL:            "https://buck.build/concept/build_file.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       MetadataDatasourceID,
		Description:        "Buck METADATA.bzl",
		GlobPatterns:       []string{"METADATA.bzl"},
		DefaultPackageType: "buck",
		SpecURL:            "https://buck.build/concept/build_file.html",
		Factory:            func() parser.Parser { return MetadataDecoder{} },
	})
}
